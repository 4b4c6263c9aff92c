package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pavanmanishd/arena/v2/args"
)

// printer writes parse results with bold labels.
type printer struct {
	w    io.Writer
	bold func(a ...any) string
}

func newPrinter(w io.Writer, noColor bool) *printer {
	c := color.New(color.Bold)
	if noColor {
		c.DisableColor()
	}
	return &printer{w: w, bold: c.SprintFunc()}
}

func (p *printer) arg(a args.Arg) {
	if a.HasInput {
		fmt.Fprintf(p.w, "%s %s %s %s\n", p.bold("flag:"), a.Literal, p.bold("input:"), a.Input)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.bold("flag:"), a.Literal)
}

func (p *printer) unknown(s string) {
	fmt.Fprintf(p.w, "%s %s\n", p.bold("unknown arg:"), s)
}

func (p *printer) failure(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.bold("error:"), err)
}
