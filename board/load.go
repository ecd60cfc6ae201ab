package board

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and normalizes a board file, choosing the decoder by
// extension: .yaml/.yml or .hcl.
func LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("board: failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(data, path)
	default:
		return Board{}, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ParseYAML decodes and normalizes a YAML board. Unknown keys are rejected.
func ParseYAML(data []byte) (Board, error) {
	var b Board
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return Board{}, fmt.Errorf("board: failed to decode YAML: %w", err)
	}
	if err := b.Normalize(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ParseHCL decodes and normalizes an HCL board. filename is used in diagnostics.
func ParseHCL(data []byte, filename string) (Board, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Board{}, fmt.Errorf("board: failed to parse HCL file %s: %w", filename, diags)
	}
	var b Board
	if diags := gohcl.DecodeBody(f.Body, nil, &b); diags.HasErrors() {
		return Board{}, fmt.Errorf("board: failed to decode HCL file %s: %w", filename, diags)
	}
	if err := b.Normalize(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// YAML returns b encoded as a YAML document.
func (b Board) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("board: failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("board: failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
