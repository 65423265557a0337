package codec

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/treekit/pkg/types"
)

func TestUnmarshal_PlainMapping(t *testing.T) {
	var raw any
	require.NoError(t, Unmarshal([]byte("value: 10\nname: ten\n"), &raw))

	m, ok := raw.(map[string]any)
	require.True(t, ok, "expected map[string]any, got %T", raw)
	require.Equal(t, 10, m["value"])
	require.Equal(t, "ten", m["name"])
}

func TestUnmarshal_EmptyDocument(t *testing.T) {
	var raw any
	require.NoError(t, Unmarshal(nil, &raw))
	require.Nil(t, raw)

	require.NoError(t, Unmarshal([]byte("null\n"), &raw))
	require.Nil(t, raw)
}

func TestUnmarshal_BOM(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{
			name: "utf-8 bom",
			data: func(t *testing.T) []byte {
				return append([]byte{0xEF, 0xBB, 0xBF}, "value: 7\n"...)
			},
		},
		{
			name: "utf-16le bom",
			data: func(t *testing.T) []byte {
				enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
				out, err := enc.Bytes([]byte("value: 7\n"))
				require.NoError(t, err)
				return out
			},
		},
		{
			name: "utf-16be bom",
			data: func(t *testing.T) []byte {
				enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
				out, err := enc.Bytes([]byte("value: 7\n"))
				require.NoError(t, err)
				return out
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw map[string]any
			require.NoError(t, Unmarshal(tt.data(t), &raw))
			require.Equal(t, 7, raw["value"])
		})
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	var raw any
	err := Unmarshal([]byte("value: [1, 2\n"), &raw)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrMalformed)
}

func TestDecode_Reader(t *testing.T) {
	var raw []any
	require.NoError(t, Decode(strings.NewReader("- 1\n- two\n"), &raw))
	require.Equal(t, []any{1, "two"}, raw)
}

func TestMarshal_KeepsFieldOrder(t *testing.T) {
	type doc struct {
		Value int  `yaml:"value"`
		Left  *doc `yaml:"left"`
		Right *doc `yaml:"right"`
	}

	out, err := Marshal(&doc{Value: 2, Left: &doc{Value: 1}})
	require.NoError(t, err)
	require.Equal(t, "value: 2\nleft:\n  value: 1\n  left: null\n  right: null\nright: null\n", string(out))
}

func TestEncode_Writer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, map[string]int{"value": 1}))
	require.Equal(t, "value: 1\n", buf.String())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("value: 1\n"), 0644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "value: 1\n", string(data))

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, types.ErrNotFound)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("value: 1\n"), 0644))

	tests := []struct {
		name       string
		input      string
		wantSource Source
		wantData   string
	}{
		{"existing file", path, SourceFile, "value: 1\n"},
		{"missing file", filepath.Join(dir, "nope.yaml"), SourceInline, filepath.Join(dir, "nope.yaml")},
		{"multi-line text", "value: 1\nleft: null\n", SourceInline, "value: 1\nleft: null\n"},
		{"directory falls back to text", dir, SourceInline, dir},
		{"single-line text", "{value: 3}", SourceInline, "{value: 3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, src := ReadSource(tt.input)
			require.Equal(t, tt.wantSource, src)
			require.Equal(t, tt.wantData, string(data))
		})
	}
}

func TestSource_String(t *testing.T) {
	require.Equal(t, "file", SourceFile.String())
	require.Equal(t, "inline", SourceInline.String())
}
