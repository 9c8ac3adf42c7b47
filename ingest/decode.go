// SPDX-License-Identifier: MIT

package ingest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rxnet/core"
)

//go:embed schema.cue
var schemaSource string

// Format is a document encoding.
type Format int

// Supported formats.
const (
	FormatYAML Format = iota
	FormatCUE
)

// FormatOf picks the format from the extension of path.
// Errors: ErrUnsupportedFormat.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return 0, fmt.Errorf("FormatOf(%q): %w", path, ErrUnsupportedFormat)
	}
}

// LoadFile reads, decodes and builds the model stored at path.
func LoadFile(path string) (*core.Model, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Build(doc)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q): %w", path, err)
	}

	return m, nil
}

// ReadFile reads and decodes the document stored at path.
func ReadFile(path string) (*Network, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%q): %w", path, err)
	}
	switch format {
	case FormatCUE:
		return DecodeCUE(data, filepath.Base(path))
	default:
		return DecodeYAML(data)
	}
}

// DecodeYAML decodes a YAML (or JSON) document. Unknown fields are rejected.
// Errors: ErrInvalidDocument.
func DecodeYAML(data []byte) (*Network, error) {
	var doc Network
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("DecodeYAML: empty document: %w", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("DecodeYAML: %v: %w", err, ErrInvalidDocument)
	}

	return &doc, nil
}

// DecodeCUE compiles a CUE document, unifies it with #Network and decodes it.
// filename labels positions in error messages.
// Errors: ErrInvalidDocument.
func DecodeCUE(data []byte, filename string) (*Network, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("DecodeCUE: schema: %w", err)
	}
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("DecodeCUE: %v: %w", err, ErrInvalidDocument)
	}

	unified := schema.LookupPath(cue.ParsePath("#Network")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("DecodeCUE: %v: %w", err, ErrInvalidDocument)
	}
	var doc Network
	if err := unified.Decode(&doc); err != nil {
		return nil, fmt.Errorf("DecodeCUE: %v: %w", err, ErrInvalidDocument)
	}

	return &doc, nil
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(w io.Writer, doc *Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}

	return enc.Close()
}
