package dto

import (
	"encoding/json"
	"math"
	"strconv"

	"seo-backoffice/domain/models"
)

// ClassifyRecord picks insert or update for one import record.
// A truthy "id" selects update with that id, anything else selects insert.
func ClassifyRecord(record map[string]any) (models.Action, any) {
	id, ok := record[idPublic]
	if ok && IsTruthy(id) {
		return models.ActionUpdate, id
	}
	return models.ActionInsert, nil
}

// IsTruthy treats nil, false, zero numbers, NaN and "" as absent.
func IsTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case float64:
		return t != 0 && !math.IsNaN(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return true
		}
		return f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// AsInt64 converts integral JSON values to int64.
func AsInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}
