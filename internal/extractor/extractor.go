package extractor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
)

// ErrMalformedInput is returned when the caller's payload is not a flat
// mapping of field names to scalar values.
var ErrMalformedInput = errors.New("malformed input")

// ParseRawInput decodes a flat JSON object into a RawInput. Strings are kept
// verbatim, booleans and numbers become their literal text and nulls are
// dropped. A boolean or number under an AI flag key is dropped too, so a flag
// is only ever set by the string "true". Nested objects or arrays, or a top level that is not an object,
// are rejected.
func ParseRawInput(data []byte) (RawInput, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level object", ErrMalformedInput)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformedInput, jsonKind(v))
	}
	return FromMap(obj)
}

// FromMap converts an already-decoded mapping into a RawInput, applying the
// same scalar rules as ParseRawInput.
func FromMap(obj map[string]any) (RawInput, error) {
	raw := make(RawInput, len(obj))
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		switch val := obj[key].(type) {
		case nil:
		case string:
			raw[key] = val
		case bool, json.Number, float64:
			if flagKeys[key] {
				continue
			}
			raw[key] = scalarText(val)
		default:
			return nil, fmt.Errorf("%w: field %q holds %s, want a scalar", ErrMalformedInput, key, jsonKind(val))
		}
	}
	return raw, nil
}

// flagKeys holds every input key read by ReadFlags.
var flagKeys = func() map[string]bool {
	m := make(map[string]bool, len(flagFields))
	for _, ff := range flagFields {
		m[ff.key] = true
	}
	return m
}()

func scalarText(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Extract reads the campaign fields from the raw input. Missing fields
// default to the empty string and missing flags to false.
func Extract(raw RawInput) Campaign {
	budget := raw["budget_1"]
	if budget == "" {
		budget = raw["budget"]
	}
	return Campaign{
		Notes:        raw["notes"],
		Budget:       budget,
		CampaignName: raw["campaign_name"],
		Brand:        raw["brand"],
		Flags:        ReadFlags(raw),
	}
}

// ReadFlags reads every AI flag by strict comparison with the literal "true".
// "True", "1" or "yes" all read as false.
func ReadFlags(raw RawInput) AIFlags {
	var f AIFlags
	for _, ff := range flagFields {
		*ff.field(&f) = raw[ff.key] == "true"
	}
	return f
}
