// SPDX-License-Identifier: MIT

package nomenclature

import "errors"

var (
	// ErrBadAliasTable indicates a YAML document that cannot be decoded into an alias table.
	ErrBadAliasTable = errors.New("nomenclature: bad alias table")

	// ErrEmptyMnemonic indicates an empty mnemonic or canonical name passed to Set.
	ErrEmptyMnemonic = errors.New("nomenclature: empty mnemonic")

	// ErrUnknownLogType indicates a string that names no LogType.
	ErrUnknownLogType = errors.New("nomenclature: unknown log type")
)
