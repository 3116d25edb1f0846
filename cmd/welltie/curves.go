// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/welltie/nomenclature"
	"github.com/katalvlaran/welltie/series"
)

// pickCurve returns name when it is set and present, otherwise the first
// column that classifies as want.
func pickCurve(t *series.Table, r *nomenclature.Resolver, name string, want nomenclature.LogType) (string, error) {
	if name != "" {
		if !t.Has(name) {
			return "", fmt.Errorf("curve %q not found", name)
		}
		return name, nil
	}
	for _, c := range t.Names() {
		if r.Classify(c) == want {
			return c, nil
		}
	}

	return "", fmt.Errorf("no %s curve found", want)
}

// create opens path for writing, or returns stdout for "" and "-".
func create(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
