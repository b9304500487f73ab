package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when a file extension or format name is not
// one of json, yaml/yml or toml.
var ErrUnsupportedFormat = errors.New("unsupported graph format")

// Format names a graph file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a format name or file extension (with or without the dot)
// to a [Format].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// =============================================================================
// Graph Serialization API
// =============================================================================

// Marshal encodes g as indented JSON. The output is deterministic for a given
// graph and is the canonical form used for content hashing.
func Marshal(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g, FormatJSON); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read decodes a graph in format f from r.
func Read(r io.Reader, f Format) (Graph, error) {
	var g Graph
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&g)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&g)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&g)
	default:
		return Graph{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return Graph{}, fmt.Errorf("decode %s: %w", f, err)
	}
	return g, nil
}

// Write encodes g in format f to w.
func Write(w io.Writer, g Graph, f Format) error {
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(nonNil(g))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(nonNil(g)); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(g)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// ReadFile reads a graph file, choosing the decoder from the extension.
func ReadFile(path string) (Graph, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Graph{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, f)
}

// WriteFile writes g to path, choosing the encoder from the extension.
// The file is created with 0644 permissions.
func WriteFile(g Graph, path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, g, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// nonNil replaces nil slices so JSON and YAML emit empty lists instead of null.
func nonNil(g Graph) Graph {
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	return g
}
