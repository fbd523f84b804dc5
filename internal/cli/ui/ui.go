// Package ui renders the output of the characteristic command.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status is the outcome of a check, which determines its symbol and color.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

// Printer writes colored lines. Color is also off when the color package
// disables it, as it does for NO_COLOR or output that is not a terminal.
type Printer struct {
	writer  io.Writer
	noColor bool
}

// PrinterOptions configures printer behavior
type PrinterOptions struct {
	NoColor bool
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts *PrinterOptions) *Printer {
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
	}
	return &Printer{writer: w, noColor: noColor}
}

func (p *Printer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.noColor {
		c.DisableColor()
	}
	return c
}

// Heading prints a section heading.
func (p *Printer) Heading(format string, args ...any) {
	p.color(color.FgCyan, color.Bold).Fprintf(p.writer, format+"\n", args...)
}

// Field prints a highlighted label followed by its value.
func (p *Printer) Field(label string, value string) {
	p.color(color.FgCyan, color.Bold).Fprint(p.writer, label+": ")
	fmt.Fprintln(p.writer, value)
}

// Item prints an indented line marked by its status.
func (p *Printer) Item(status Status, format string, args ...any) {
	var c *color.Color
	var symbol string
	switch status {
	case StatusOK:
		c = p.color(color.FgGreen)
		symbol = "✓"
	case StatusWarning:
		c = p.color(color.FgYellow)
		symbol = "!"
	default:
		c = p.color(color.FgRed)
		symbol = "✗"
	}
	c.Fprintf(p.writer, "  %s ", symbol)
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// Detail prints a dimmed, further indented line.
func (p *Printer) Detail(format string, args ...any) {
	p.color(color.Faint).Fprintf(p.writer, "    "+format+"\n", args...)
}

// Summary prints a closing line colored by status.
func (p *Printer) Summary(status Status, format string, args ...any) {
	var c *color.Color
	switch status {
	case StatusOK:
		c = p.color(color.FgGreen, color.Bold)
	case StatusWarning:
		c = p.color(color.FgYellow, color.Bold)
	default:
		c = p.color(color.FgRed, color.Bold)
	}
	c.Fprintf(p.writer, format+"\n", args...)
}
