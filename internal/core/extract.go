package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadLogRecords parses each line of a line-delimited JSON file on its own
// and returns the records in file order. Blank lines are skipped wherever
// they appear, between records as well as at the end, so an empty file or
// a trailing newline adds no record.
func ReadLogRecords(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	records, err := parseLogLines(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

const jsonWhitespace = " \t\r"

func parseLogLines(data []byte) ([]json.RawMessage, error) {
	records := []json.RawMessage{}

	var lineStart int64
	for i, line := range bytes.Split(data, []byte("\n")) {
		start := lineStart
		lineStart += int64(len(line)) + 1

		trimmed := bytes.Trim(line, jsonWhitespace)
		if len(trimmed) == 0 {
			continue
		}
		lead := int64(len(line) - len(bytes.TrimLeft(line, jsonWhitespace)))

		var record json.RawMessage
		if err := json.Unmarshal(trimmed, &record); err != nil {
			lineErr := &LineError{Line: i + 1, Offset: lead, FileOffset: start + lead, Err: err}
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				lineErr.Offset += syntaxErr.Offset
				lineErr.FileOffset += syntaxErr.Offset
			}
			return nil, lineErr
		}
		records = append(records, record)
	}

	return records, nil
}

// ArrayLiteral turns line-delimited JSON text into an array literal by
// joining the lines with commas. The result is not validated.
func ArrayLiteral(content string) string {
	return "[" + strings.Trim(strings.ReplaceAll(content, "\n", ","), ",") + "]"
}
