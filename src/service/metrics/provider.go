// Package metrics is the boundary to the upstream MetricsExtractor. The
// engine consumes model.MetricsInput values; how they are derived from a
// specification (usually by an LLM) lives outside this repository.
package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"phase-planner/src/model"
)

// Extractor produces the metrics for one analysis
type Extractor interface {
	Extract(ctx context.Context) (model.MetricsInput, error)
}

// StaticExtractor returns a fixed MetricsInput
type StaticExtractor model.MetricsInput

// Extract returns the wrapped metrics
func (s StaticExtractor) Extract(ctx context.Context) (model.MetricsInput, error) {
	return model.MetricsInput(s), nil
}

// FileProvider reads metrics from a YAML or JSON document
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider for the given file. "-" reads stdin.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the source file path
func (p *FileProvider) Path() string {
	return p.path
}

// Extract reads and decodes the metrics document. Decoding rejects
// unknown fields; range checks happen in the engine.
func (p *FileProvider) Extract(ctx context.Context) (model.MetricsInput, error) {
	if err := ctx.Err(); err != nil {
		return model.MetricsInput{}, err
	}

	var (
		data []byte
		err  error
	)
	if p.path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(p.path)
	}
	if err != nil {
		return model.MetricsInput{}, fmt.Errorf("reading metrics: %w", err)
	}

	return Decode(data, formatFor(p.path, data))
}

// Decode parses a metrics document in the given format ("json" or "yaml")
func Decode(data []byte, format string) (model.MetricsInput, error) {
	var m model.MetricsInput
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return model.MetricsInput{}, fmt.Errorf("parsing metrics json: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return model.MetricsInput{}, fmt.Errorf("parsing metrics yaml: %w", err)
		}
	default:
		return model.MetricsInput{}, fmt.Errorf("unsupported metrics format: %s", format)
	}
	return m, nil
}

// formatFor picks a decoder from the file extension, falling back to
// sniffing the first non-space byte
func formatFor(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return "json"
	}
	return "yaml"
}
