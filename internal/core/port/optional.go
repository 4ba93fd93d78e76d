package port

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"campaign-manager/internal/core/domain"
)

// Optional records whether a JSON key was present in a request body, which
// a plain pointer cannot tell apart from an explicit null. Set is true for
// any present key; Null additionally marks a literal null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked by encoding/json for keys present in the
// input, including null ones.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Amount is a budget value. It accepts a JSON number or a string holding a
// finite number.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.NewValidationError("Invalid budget")
	}
	switch v := raw.(type) {
	case float64:
		*a = Amount(v)
		return nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		// ParseFloat accepts "Inf" and "NaN", which JSON cannot encode back.
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return domain.NewValidationError("Invalid budget")
		}
		*a = Amount(f)
		return nil
	default:
		return domain.NewValidationError("Invalid budget")
	}
}
