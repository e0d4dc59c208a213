// Package report prints a human-readable summary of an apply run: one line
// per key whose record changed, listing every field that moved from its
// baseline.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/models"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes apply summaries to an output stream.
type Printer struct {
	out io.Writer

	key    *color.Color
	before *color.Color
	after  *color.Color
	muted  *color.Color
}

// Option configures a [Printer].
type Option func(*Printer)

// WithColor forces colored output on or off. By default colors are enabled
// only when the output is a terminal.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.setColor(enabled)
	}
}

// NewPrinter builds a Printer writing to out.
func NewPrinter(out io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:    out,
		key:    color.New(color.Bold),
		before: color.New(color.FgRed),
		after:  color.New(color.FgGreen),
		muted:  color.New(color.FgHiBlack),
	}
	p.setColor(isTerminal(out))

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes one line per changed resolution followed by a totals line.
func (p *Printer) Print(resolutions []host.Resolution) error {
	changed := 0
	for _, r := range resolutions {
		if !r.Changed {
			continue
		}
		changed++

		if _, err := fmt.Fprintf(p.out, "%s", p.key.Sprint(r.Name.String())); err != nil {
			return err
		}
		for _, d := range Diff(r.Baseline, r.Climate) {
			if _, err := fmt.Fprintf(p.out, " %s %s %s %s",
				d.Field, p.before.Sprint(d.Before), p.muted.Sprint("->"), p.after.Sprint(d.After)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.out); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(p.out, p.muted.Sprintf("%d of %d records patched", changed, len(resolutions)))
	return err
}

func (p *Printer) setColor(enabled bool) {
	for _, c := range []*color.Color{p.key, p.before, p.after, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// FieldDiff is one field that differs between two records.
type FieldDiff struct {
	Field  string
	Before string
	After  string
}

// Diff lists the fields of after that differ from before, in record order.
func Diff(before, after models.Climate) []FieldDiff {
	var diffs []FieldDiff
	if before.Precipitation != after.Precipitation {
		diffs = append(diffs, FieldDiff{"precipitation", before.Precipitation.String(), after.Precipitation.String()})
	}
	if before.Temperature != after.Temperature {
		diffs = append(diffs, FieldDiff{"temperature", formatFloat(before.Temperature), formatFloat(after.Temperature)})
	}
	if before.TemperatureModifier != after.TemperatureModifier {
		diffs = append(diffs, FieldDiff{"temperatureModifier", before.TemperatureModifier.String(), after.TemperatureModifier.String()})
	}
	if before.Downfall != after.Downfall {
		diffs = append(diffs, FieldDiff{"downfall", formatFloat(before.Downfall), formatFloat(after.Downfall)})
	}
	return diffs
}

func formatFloat(v float32) string {
	return fmt.Sprintf("%g", v)
}
