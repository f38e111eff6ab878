package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawString holds a scalar request value as text. JSON strings are kept as
// they are; numbers and booleans keep their literal form.
type RawString string

// UnmarshalJSON accepts a string, number or boolean literal
func (r *RawString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RawString(s)
		return nil
	}

	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*r = RawString(strconv.FormatBool(v))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = RawString(n.String())
	return nil
}

// String returns the raw value
func (r RawString) String() string {
	return string(r)
}

// StringPtr converts an optional value, keeping nil as nil
func (r *RawString) StringPtr() *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

// Int64 parses the value as a base 10 integer
func (r *RawString) Int64() (int64, bool) {
	if r == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(*r)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
