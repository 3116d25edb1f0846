// SPDX-License-Identifier: MIT
// Package: welltie/nomenclature
//
// resolver.go — longest-prefix alias resolution.
//
// Ties between aliases of equal length are broken by canonical name order, so
// the result never depends on map iteration order.

package nomenclature

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var defaultAliases []byte

// aliasFile is the on-disk layout of an alias table.
type aliasFile struct {
	Aliases map[string][]string `yaml:"LOG_MNEMONIC_ALIASES"`
}

// Resolver resolves mnemonics against an alias table.
// It is not safe for concurrent use with Set.
type Resolver struct {
	canon   []string            // sorted canonical names
	aliases map[string][]string // canonical → upper-cased aliases
}

// NewResolver builds a resolver from an in-memory table. Names and aliases are
// upper-cased; empty aliases are dropped.
func NewResolver(table map[string][]string) *Resolver {
	r := &Resolver{aliases: make(map[string][]string, len(table))}
	for canonical, list := range table {
		c := strings.ToUpper(strings.TrimSpace(canonical))
		if c == "" {
			continue
		}
		for _, a := range list {
			r.add(c, a)
		}
		if _, ok := r.aliases[c]; !ok {
			r.aliases[c] = nil
			r.canon = append(r.canon, c)
		}
	}
	sort.Strings(r.canon)

	return r
}

// Default returns a resolver over the embedded alias table.
func Default() *Resolver {
	r, err := Parse(defaultAliases)
	if err != nil {
		// The embedded table is part of the build.
		panic(err)
	}

	return r
}

// Parse decodes a YAML alias table.
func Parse(data []byte) (*Resolver, error) {
	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadAliasTable, err)
	}

	return NewResolver(f.Aliases), nil
}

// Load decodes a YAML alias table from r.
func Load(r io.Reader) (*Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("nomenclature: read alias table: %w", err)
	}

	return Parse(data)
}

// LoadFile decodes the YAML alias table at path.
func LoadFile(path string) (*Resolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nomenclature: open alias table: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Set registers mnemonic as an alias of canonical, creating canonical if needed.
func (r *Resolver) Set(mnemonic, canonical string) error {
	c := strings.ToUpper(strings.TrimSpace(canonical))
	if c == "" || strings.TrimSpace(mnemonic) == "" {
		return ErrEmptyMnemonic
	}
	r.add(c, mnemonic)
	sort.Strings(r.canon)

	return nil
}

func (r *Resolver) add(canonical, alias string) {
	a := strings.ToUpper(strings.TrimSpace(alias))
	if a == "" {
		return
	}
	if _, ok := r.aliases[canonical]; !ok {
		r.canon = append(r.canon, canonical)
	}
	for _, have := range r.aliases[canonical] {
		if have == a {
			return
		}
	}
	r.aliases[canonical] = append(r.aliases[canonical], a)
}

// Resolve returns the canonical name for mnemonic, or the upper-cased
// mnemonic when no alias prefixes it.
func (r *Resolver) Resolve(mnemonic string) string {
	m := strings.ToUpper(strings.TrimSpace(mnemonic))
	best, bestLen := "", 0
	for _, c := range r.canon {
		for _, a := range r.aliases[c] {
			if len(a) > bestLen && strings.HasPrefix(m, a) {
				best, bestLen = c, len(a)
			}
		}
	}
	if best == "" {
		return m
	}

	return best
}

// ResolveAll resolves every mnemonic.
func (r *Resolver) ResolveAll(mnemonics []string) map[string]string {
	out := make(map[string]string, len(mnemonics))
	for _, m := range mnemonics {
		out[m] = r.Resolve(m)
	}

	return out
}

// Canonical returns the known canonical names in sorted order.
func (r *Resolver) Canonical() []string {
	return append([]string(nil), r.canon...)
}

// Classify resolves mnemonic and maps the canonical name onto a LogType.
func (r *Resolver) Classify(mnemonic string) LogType {
	return LogTypeOf(r.Resolve(mnemonic))
}
