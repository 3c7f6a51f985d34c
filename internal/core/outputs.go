package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jakebark/logarray/internal/config"
)

// DestinationPath appends the output extension to the source base name
func DestinationPath(destDir, sourcePath string) string {
	return filepath.Join(destDir, filepath.Base(sourcePath)) + config.OutputExt
}

// RenderLogArray pretty-prints records as one JSON array. Key order and
// number text are copied from the records. String escapes are decoded, so
// non-ASCII characters are written literally.
func RenderLogArray(records []json.RawMessage, indent string) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, record := range records {
		if i > 0 {
			compact.WriteByte(',')
		}
		decoded, err := decodeStrings(record)
		if err != nil {
			return nil, fmt.Errorf("formatting record %d: %w", i, err)
		}
		compact.Write(decoded)
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("formatting log array: %w", err)
	}
	return out.Bytes(), nil
}

// decodeStrings re-encodes every string in a JSON value that contains an
// escape. Control characters and quotes stay escaped, everything else is
// written as-is. Bytes outside strings are copied unchanged.
func decodeStrings(raw []byte) ([]byte, error) {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)

	for i := 0; i < len(raw); {
		if raw[i] != '"' {
			out.WriteByte(raw[i])
			i++
			continue
		}

		end := stringEnd(raw, i)
		token := raw[i:end]
		i = end
		if bytes.IndexByte(token, '\\') < 0 {
			out.Write(token)
			continue
		}

		var s string
		if err := json.Unmarshal(token, &s); err != nil {
			return nil, err
		}
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		out.Truncate(out.Len() - 1) // Encode appends a newline
	}
	return out.Bytes(), nil
}

// stringEnd returns the index just past the closing quote of the string
// starting at raw[start]
func stringEnd(raw []byte, start int) int {
	for i := start + 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(raw)
}

// WriteLogArray renders records and writes them to filename. The parent
// directory must exist.
func WriteLogArray(filename string, records []json.RawMessage, indent string) (int, error) {
	data, err := RenderLogArray(records, indent)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return 0, fmt.Errorf("writing log array: %w", err)
	}
	return len(data), nil
}

// PersistArrayLiteral parses a literal built by ArrayLiteral and writes it
// like WriteLogArray. Nothing is written when the literal is malformed.
func PersistArrayLiteral(filename, literal, indent string) (int, error) {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(literal), &records); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return 0, &LiteralError{Offset: syntaxErr.Offset, Err: err}
		}
		return 0, fmt.Errorf("parsing log array: %w", err)
	}
	return WriteLogArray(filename, records, indent)
}

func reportResult(w io.Writer, result Result) {
	fmt.Fprintf(w, "%s -> %s (%d records, %d characters)\n",
		filepath.Base(result.Source), result.Destination, result.Records, result.Size)
}
