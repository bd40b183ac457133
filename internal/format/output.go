package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// TextWriter is implemented by payloads that have a plain-text rendering.
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - edn
// - text (payloads implementing TextWriter)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		tw, ok := v.(TextWriter)
		if !ok {
			return fmt.Errorf("format text not supported for %T", v)
		}
		return tw.WriteText(w)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes one JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
