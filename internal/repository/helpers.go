package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique index violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// isRecordRef reports whether id has the table:id shape type::record accepts.
// Malformed ids would make the cast throw, so callers treat them as absent
// records instead of surfacing a query error.
func isRecordRef(id string) bool {
	table, key, ok := strings.Cut(id, ":")
	return ok && table != "" && key != ""
}

// recordID extracts a record ID from a SurrealDB result value
func recordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var rid models.RecordID
		if err := json.Unmarshal(data, &rid); err == nil {
			return rid.String()
		}
	}

	return ""
}

// parseTime parses a time value from the formats the client returns
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// parseTimePtr is parseTime for optional fields; nil when absent or unparseable
func parseTimePtr(v interface{}) *time.Time {
	if v == nil {
		return nil
	}
	t := parseTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// parseInt coerces the numeric types the CBOR decoder may produce
func parseInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}

// parseString returns the string value of a field, or ""
func parseString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// rows extracts the result rows from a raw query response
func rows(result []interface{}) []interface{} {
	if len(result) == 0 {
		return nil
	}
	first := result[0]
	if resp, ok := first.(map[string]interface{}); ok {
		if data, ok := resp["result"].([]interface{}); ok {
			return data
		}
	}
	return result
}

// row coerces a single result into a field map
func row(result interface{}) (map[string]interface{}, bool) {
	if result == nil {
		return nil, false
	}
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			inner := resp["result"]
			if arr, ok := inner.([]interface{}); ok {
				if len(arr) == 0 {
					return nil, false
				}
				inner = arr[0]
			}
			result = inner
		}
	}
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, false
		}
		result = arr[0]
	}
	data, ok := result.(map[string]interface{})
	return data, ok
}
