// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// ClassifyCmd prints the canonical name, log type and family of mnemonics.
type ClassifyCmd struct {
	Mnemonics []string `arg:"positional,required" help:"curve mnemonics"`
}

func (c *ClassifyCmd) Run(e *env, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MNEMONIC\tCANONICAL\tTYPE\tFAMILY")
	for _, m := range c.Mnemonics {
		lt := e.resolver.Classify(m)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m, e.resolver.Resolve(m), lt, lt.Family())
	}

	return tw.Flush()
}
