package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/JonMunkholm/dexconv/internal/logging"
)

// Options controls a conversion run.
type Options struct {
	Shape       Shape
	Duplicates  DuplicatePolicy
	ExportName  string
	MaxFileSize int64 // Bytes; 0 disables the limit
}

// Result contains the outcome of a conversion run.
type Result struct {
	RunID      string
	Collection *Collection
	Output     []byte
	Stats      BuildStats
	Duration   time.Duration
}

// Converter runs the full pipeline: read, tokenize, resolve headers, build
// entries and serialize. It holds no mutable state and may be shared.
type Converter struct {
	registry *Registry
	aliases  *AliasTable
	opts     Options
}

// NewConverter creates a converter for one schema version.
func NewConverter(reg *Registry, aliases *AliasTable, opts Options) *Converter {
	if opts.Shape == "" {
		opts.Shape = ShapeLegacy
	}
	if opts.Duplicates == "" {
		opts.Duplicates = DuplicateOverwrite
	}
	if opts.ExportName == "" {
		opts.ExportName = DefaultExportName
	}
	return &Converter{registry: reg, aliases: aliases, opts: opts}
}

// Options returns the converter options with defaults applied.
func (c *Converter) Options() Options {
	return c.opts
}

// Registry returns the schema the converter validates against.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// Convert reads input in the given format and returns the rendered output.
func (c *Converter) Convert(ctx context.Context, r io.Reader, format Format) (*Result, error) {
	start := time.Now()

	runID := logging.RunIDFromContext(ctx)
	if runID == "" {
		runID = logging.NewRunID()
		ctx = logging.ContextWithRunID(ctx, runID)
	}
	logger := logging.WithFields(ctx, "schema", c.registry.Name(), "shape", c.opts.Shape)

	rows, err := ReadRows(r, format, c.opts.MaxFileSize)
	if err != nil {
		return nil, err
	}
	logger.Debug("input tokenized", "lines", len(rows), "format", format)

	b := &Builder{
		Registry:   c.registry,
		Aliases:    c.aliases,
		Shape:      c.opts.Shape,
		Duplicates: c.opts.Duplicates,
		Logger:     logger,
	}
	coll, stats, err := b.Build(ctx, rows)
	if err != nil {
		return nil, err
	}

	out, err := Render(c.opts.ExportName, coll)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:      runID,
		Collection: coll,
		Output:     out,
		Stats:      stats,
		Duration:   time.Since(start),
	}
	logger.Info("conversion complete",
		"rows", stats.Rows,
		"entries", stats.Entries,
		"overwritten", len(stats.Overwritten),
		"unrecognized_headers", len(stats.Unrecognized),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// ConvertFile converts the file at inPath and writes the output to outPath.
// The output file is only created once conversion has succeeded.
func (c *Converter) ConvertFile(ctx context.Context, inPath, outPath string) (*Result, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, inputError(inPath, err)
	}
	defer in.Close()

	res, err := c.Convert(ctx, in, FormatFromPath(inPath))
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = inPath
		}
		return nil, err
	}

	if err := writeOutput(outPath, res.Output); err != nil {
		return nil, err
	}
	return res, nil
}

// writeOutput writes data to a temp file next to path and renames it into
// place, so a failed write never leaves a truncated output behind.
func writeOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return outputError(path, err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return outputError(path, fmt.Errorf("write: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return outputError(path, fmt.Errorf("close: %w", err))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return outputError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return outputError(path, fmt.Errorf("rename: %w", err))
	}
	return nil
}
