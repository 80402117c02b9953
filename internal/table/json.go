package table

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// feedPayload is the JSON feed's table shape: a column label list plus
// row-major cell values. Cells arrive as JSON strings or numbers.
type feedPayload struct {
	Columns []string            `json:"columns"`
	Rows    [][]json.RawMessage `json:"rows"`
}

// ParseJSON converts a JSON feed payload into a Table. The column labels
// become the header row, mirroring the HTML pages so the normalizer sees
// one shape regardless of source.
func ParseJSON(data []byte) (*Table, error) {
	var payload feedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode feed payload: %w", err)
	}
	if len(payload.Columns) == 0 {
		return nil, fmt.Errorf("feed payload has no columns")
	}

	rows := make([][]string, 0, len(payload.Rows)+1)
	rows = append(rows, payload.Columns)

	for i, raw := range payload.Rows {
		cells := make([]string, len(raw))
		for j, cell := range raw {
			s, err := stringifyCell(cell)
			if err != nil {
				return nil, fmt.Errorf("feed row %d col %d: %w", i, j, err)
			}
			cells[j] = s
		}
		rows = append(rows, cells)
	}

	tbl := &Table{Rows: rows}
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("malformed feed table: %w", err)
	}
	return tbl, nil
}

// stringifyCell renders a JSON scalar as the cell string the normalizer
// expects. Numbers keep their shortest representation so "456" and 456
// normalize identically.
func stringifyCell(raw json.RawMessage) (string, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", v)
	}
}
