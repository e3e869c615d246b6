// Package csvtext implements the delimited text format used for the
// persisted blobs and for user-facing CSV export.
//
// The format is a header line of field names followed by one line per
// record. String fields are double-quoted with internal quotes doubled;
// numeric fields are written bare. Decoding maps positional values back to
// the header's field names and keeps a cell as a string unless it parses as
// a number, is non-empty and does not start with '0' (so zero-padded
// identifiers like "007" survive as strings). Raw newlines inside fields
// are not escaped and will corrupt the encoding.
package csvtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnterminatedQuote is returned for a line whose quoted cell never closes.
var ErrUnterminatedQuote = errors.New("csvtext: unterminated quoted value")

// Encode renders the header and rows. Row values must be strings or ints.
// An empty row set still yields the header line so a decoder can tell an
// empty collection from an absent blob.
func Encode(header []string, rows [][]any) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, v := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(encodeValue(v))
		}
	}
	return b.String()
}

func encodeValue(v any) string {
	switch t := v.(type) {
	case string:
		return `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return `"` + strings.ReplaceAll(fmt.Sprint(t), `"`, `""`) + `"`
	}
}

// Decode parses text into one map per record, keyed by the header fields.
// Empty input and a header-only line both yield an empty collection.
// Numeric-looking cells decode as float64 per the leading-zero rule; all
// other cells decode as strings. Missing trailing cells decode as "".
func Decode(text string) ([]map[string]any, error) {
	if text == "" {
		return []map[string]any{}, nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return []map[string]any{}, nil
	}

	header := strings.Split(lines[0], ",")
	records := make([]map[string]any, 0, len(lines)-1)
	for n, line := range lines[1:] {
		cells, err := splitLine(line)
		if err != nil {
			return nil, fmt.Errorf("csvtext: line %d: %w", n+2, err)
		}
		rec := make(map[string]any, len(header))
		for i, field := range header {
			raw := ""
			if i < len(cells) {
				raw = cells[i]
			}
			rec[field] = sniff(raw)
		}
		records = append(records, rec)
	}
	return records, nil
}

// splitLine splits one record line on commas, honoring quoted cells. A cell
// entirely wrapped in quotes is unquoted with doubled quotes collapsed.
func splitLine(line string) ([]string, error) {
	var cells []string
	for i := 0; ; {
		if i < len(line) && line[i] == '"' {
			var b strings.Builder
			i++
			closed := false
			for i < len(line) {
				if line[i] == '"' {
					if i+1 < len(line) && line[i+1] == '"' {
						b.WriteByte('"')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				b.WriteByte(line[i])
				i++
			}
			if !closed {
				return nil, ErrUnterminatedQuote
			}
			cells = append(cells, b.String())
		} else {
			end := strings.IndexByte(line[i:], ',')
			if end < 0 {
				cells = append(cells, line[i:])
				return cells, nil
			}
			cells = append(cells, line[i:i+end])
			i += end
		}
		if i >= len(line) {
			return cells, nil
		}
		if line[i] != ',' {
			return nil, fmt.Errorf("csvtext: unexpected %q after quoted value", line[i])
		}
		i++
		if i == len(line) {
			// trailing comma means one last empty cell
			cells = append(cells, "")
			return cells, nil
		}
	}
}

// sniff applies the numeric heuristic: a value is a number only if it
// parses, is non-empty and does not start with '0'.
func sniff(raw string) any {
	if raw == "" || strings.HasPrefix(raw, "0") {
		return raw
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// String coerces a decoded cell back to its string form regardless of how
// the sniff classified it.
func String(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Int coerces a decoded cell to an int, tolerating both representations.
func Int(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		return 0
	}
}
