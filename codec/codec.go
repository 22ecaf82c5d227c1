// Package codec converts JSON and YAML documents, files and typed Go values
// into the generic trees treepath operates on, and back.
//
// Trees are built from map[string]any, []any and scalars. JSON numbers are
// kept as json.Number so their literal text survives a round trip.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format selects the document syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("codec: unsupported format")
	ErrDecode            = errors.New("codec: decode failed")
	ErrEncode            = errors.New("codec: encode failed")
	ErrNotMapping        = errors.New("codec: document root is not a mapping")
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Decode reads a single document whose root must be a mapping.
func Decode(r io.Reader, f Format) (map[string]any, error) {
	var doc any

	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON document", ErrDecode)
		}
	case YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	tree, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}

	return tree, nil
}

// DecodeFile reads a document, choosing the format from the file extension.
func DecodeFile(name string) (map[string]any, error) {
	f, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer file.Close()

	tree, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return tree, nil
}

// FromValue converts a typed value, usually a struct, into a tree by way of
// its JSON encoding.
func FromValue(v any) (map[string]any, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return Decode(bytes.NewReader(payload), JSON)
}

// Encode writes tree as indented JSON or as YAML.
func Encode(w io.Writer, tree map[string]any, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return nil
	case YAML:
		payload, err := yaml.Marshal(yamlValue(tree))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// EncodeFile writes tree to name, choosing the format from the file extension.
func EncodeFile(name string, tree map[string]any) error {
	f, err := FormatFromPath(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, tree, f); err != nil {
		return err
	}

	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// normalize turns YAML mappings with non-string keys into map[string]any.
func normalize(v any) any {
	switch n := v.(type) {
	case map[string]any:
		for k, child := range n {
			n[k] = normalize(child)
		}
		return n
	case map[any]any:
		out := make(map[string]any, len(n))
		for k, child := range n {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range n {
			n[i] = normalize(child)
		}
		return n
	default:
		return v
	}
}

// yamlValue copies a tree replacing json.Number with native numbers, so YAML
// output carries numbers rather than quoted strings.
func yamlValue(v any) any {
	switch n := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, child := range n {
			out[k] = yamlValue(child)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, child := range n {
			out[i] = yamlValue(child)
		}
		return out
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	default:
		return v
	}
}
