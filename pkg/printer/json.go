package printer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joshuapare/treekit/internal/codec"
)

// printJSON writes v as JSON followed by a newline.
func (p *Printer) printJSON(v any) error {
	var (
		data []byte
		err  error
	)
	if p.opts.Compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", p.indentSize()))
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printYAML writes v as block-style YAML.
func (p *Printer) printYAML(v any) error {
	return codec.Encode(p.writer, v)
}

func (p *Printer) indentSize() int {
	if p.opts.IndentSize <= 0 {
		return DefaultIndentSize
	}
	return p.opts.IndentSize
}
