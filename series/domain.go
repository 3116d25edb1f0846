// SPDX-License-Identifier: MIT

package series

import "strings"

// Domain tags whether an index is measured in depth or in time.
type Domain int

const (
	// DomainUnknown is used when the index name gives no hint.
	DomainUnknown Domain = iota
	// DomainDepth marks a depth-indexed table (index name contains "depth" or "dept").
	DomainDepth
	// DomainTime marks a time-indexed table (index name contains "time" or "twt").
	DomainTime
)

// String returns "depth", "time" or "unknown".
func (d Domain) String() string {
	switch d {
	case DomainDepth:
		return "depth"
	case DomainTime:
		return "time"
	default:
		return "unknown"
	}
}

// InferDomain classifies an index by case-insensitive substring match:
// "depth"/"dept" → DomainDepth, "time"/"twt" → DomainTime, otherwise DomainUnknown.
func InferDomain(indexName string) Domain {
	name := strings.ToLower(indexName)
	switch {
	case name == "":
		return DomainUnknown
	case strings.Contains(name, "dept"): // covers "depth"
		return DomainDepth
	case strings.Contains(name, "time"), strings.Contains(name, "twt"):
		return DomainTime
	default:
		return DomainUnknown
	}
}
