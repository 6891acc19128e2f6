package adsdomain

import (
	"strconv"
	"strings"
)

// Int64Value decodes int64 fields, which the REST API encodes as JSON strings.
type Int64Value int64

func (v *Int64Value) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*v = Int64Value(n)
	return nil
}

func (v Int64Value) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(v), 10))), nil
}

func (v Int64Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func Bool(b bool) *bool {
	return &b
}
