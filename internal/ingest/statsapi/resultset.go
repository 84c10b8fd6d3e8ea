package statsapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ResultSet is the stats API's tabular envelope: named column headers plus
// untyped row values.
type ResultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

type response struct {
	Resource   string      `json:"resource"`
	ResultSets []ResultSet `json:"resultSets"`
}

// decodeResultSet extracts the named result set from a response body.
func decodeResultSet(body []byte, name string) (*ResultSet, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	for i := range resp.ResultSets {
		if resp.ResultSets[i].Name == name {
			return &resp.ResultSets[i], nil
		}
	}

	return nil, fmt.Errorf("result set %q not present in response", name)
}

// Column returns the index of an exact header name.
func (rs *ResultSet) Column(name string) (int, bool) {
	for i, h := range rs.Headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// ProbeColumn returns the index of the first candidate header that exists.
// A miss is a schema error: the message names every candidate tried and
// the headers actually present, so the failure is diagnosable from logs.
func (rs *ResultSet) ProbeColumn(candidates ...string) (int, error) {
	for _, c := range candidates {
		if i, ok := rs.Column(c); ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no column matching any of [%s]; headers present: [%s]",
		strings.Join(candidates, ", "), strings.Join(rs.Headers, ", "))
}

// Row values arrive as JSON's float64/string/nil. These helpers coerce
// them without failing the pipeline on odd but recoverable shapes.

func asString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}

func asInt(v interface{}) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	default:
		return 0
	}
}

func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f
	default:
		return 0
	}
}
