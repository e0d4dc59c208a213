package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/config"
	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/report"
)

// stdStream is the path value that selects stdin or stdout.
const stdStream = "-"

// apply reads the host's baseline document, posts one query per record and
// writes the final records. The summary goes to stderr.
func apply(ctx context.Context, bus *host.Bus, c *codec.Codec, cfg config.Host, log *logger.Logger) error {
	return applyStreams(ctx, bus, c, cfg, os.Stdin, os.Stdout, report.NewPrinter(os.Stderr), log)
}

func applyStreams(ctx context.Context, bus *host.Bus, c *codec.Codec, cfg config.Host,
	stdin io.Reader, stdout io.Writer, printer *report.Printer, log *logger.Logger) error {
	data, err := readInput(cfg.BaselinesPath, stdin)
	if err != nil {
		return fmt.Errorf("error reading baselines: %w", err)
	}

	baselines, err := c.DecodeBaselines(data)
	if err != nil {
		return fmt.Errorf("error decoding baselines: %w", err)
	}
	log.Debug().Int("count", len(baselines)).Msg("baselines decoded")

	resolutions, err := host.Resolve(ctx, bus, baselines)
	if err != nil {
		return err
	}

	out, err := c.EncodeBaselines(host.Climates(resolutions))
	if err != nil {
		return fmt.Errorf("error encoding climates: %w", err)
	}

	if err := writeOutput(cfg.OutputPath, stdout, out); err != nil {
		return fmt.Errorf("error writing climates: %w", err)
	}

	return printer.Print(resolutions)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == stdStream {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == stdStream {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
