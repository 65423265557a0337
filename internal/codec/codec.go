// Package codec converts between YAML text and the plain mapping/sequence
// values consumed by the tree engines.
//
// Decoding is BOM-aware: UTF-8 and UTF-16 (LE/BE) input with a byte-order mark
// is transcoded to UTF-8 before parsing, so files saved by Windows editors load
// the same as plain UTF-8 files.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/pkg/types"
)

// IndentSize is the number of spaces per nesting level in emitted YAML.
const IndentSize = 2

// Source records where loader input came from.
type Source int

const (
	// SourceInline means the input string itself was parsed as YAML.
	SourceInline Source = iota
	// SourceFile means the input string named a file whose content was parsed.
	SourceFile
)

func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "inline"
}

// Unmarshal decodes YAML data into v.
// Parse failures are reported as types.ErrMalformed.
func Unmarshal(data []byte, v any) error {
	utf8Data, err := toUTF8(data)
	if err != nil {
		return fmt.Errorf("decode text: %w: %w", types.ErrMalformed, err)
	}
	if err := yaml.Unmarshal(utf8Data, v); err != nil {
		return fmt.Errorf("parse yaml: %w: %w", types.ErrMalformed, err)
	}
	return nil
}

// Decode reads all of r and decodes it into v.
func Decode(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read yaml: %w", err)
	}
	return Unmarshal(data, v)
}

// Marshal encodes v as block-style YAML. Struct fields keep their declaration
// order rather than being sorted.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes v to w as block-style YAML.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(IndentSize)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// ReadFile returns the content of path. A missing file is reported as
// types.ErrNotFound (and still matches fs.ErrNotExist).
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", types.ErrNotFound, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ReadSource resolves loader input that may be either a file path or inline
// YAML text.
//
// The input is treated as a path only when it contains no line break and an
// entry with that name exists. If reading it fails for any reason the input is
// parsed as literal text instead. This is inherently ambiguous: a single-line
// YAML document that happens to match an existing filename is read as a file.
func ReadSource(input string) ([]byte, Source) {
	if !strings.Contains(input, "\n") {
		if _, err := os.Stat(input); err == nil {
			data, err := os.ReadFile(input)
			if err == nil {
				logger.Debug("loading yaml from file", "path", input, "bytes", len(data))
				return data, SourceFile
			}
			logger.Debug("file read failed, parsing input as yaml text", "path", input, "error", err)
		}
	}
	logger.Debug("parsing inline yaml", "bytes", len(input))
	return []byte(input), SourceInline
}

// toUTF8 strips a byte-order mark, transcoding UTF-16 input to UTF-8.
func toUTF8(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	return out, err
}
