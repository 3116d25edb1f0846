// SPDX-License-Identifier: MIT

// Package nomenclature maps raw curve mnemonics onto canonical log types.
//
// A Resolver holds an alias table (canonical name → aliases). Resolve picks
// the canonical name whose alias is the longest case-insensitive prefix of the
// mnemonic; unmatched mnemonics come back upper-cased. Classify goes one step
// further and returns a closed LogType, so callers switch on a tag instead of
// testing substrings of curve names.
//
// Alias tables are YAML documents with a LOG_MNEMONIC_ALIASES mapping. Default
// returns a resolver over the table embedded in this package; Load and
// LoadFile read caller-supplied tables. Nothing is searched for on disk.
package nomenclature
