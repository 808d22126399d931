package api

import (
	"encoding/json"
	"math"
	"strconv"
)

// FlexID accepts a JSON number or a numeric string. The client application
// is not consistent about which it sends for record ids, so every id field
// in a request DTO uses this type. Decoding never fails; unparsable input
// just leaves the id unset (callers treat 0/unset as missing).
type FlexID struct {
	value int64
	valid bool
}

func NewFlexID(v int64) FlexID {
	return FlexID{value: v, valid: true}
}

// Value returns the id and whether a finite non-zero number was provided.
func (f FlexID) Value() (int64, bool) {
	return f.value, f.valid && f.value != 0
}

// Int64 returns the raw parsed value (0 when unset).
func (f FlexID) Int64() int64 {
	return f.value
}

func (f *FlexID) UnmarshalJSON(data []byte) error {
	f.value, f.valid = 0, false

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			f.value, f.valid = int64(v), true
		}
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			f.value, f.valid = int64(n), true
		}
	}
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}
