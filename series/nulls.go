package series

import "gopkg.in/guregu/null.v3"

// FromNullFloats builds a float column where invalid entries are nulls.
func FromNullFloats(name string, in []null.Float) *Series[float64] {
	values := make([]float64, len(in))
	valid := make([]bool, len(in))
	for i, v := range in {
		values[i] = v.Float64
		valid[i] = v.Valid
	}
	s, _ := NewWithNulls(name, values, valid)
	return s
}

// FromNullInts builds an integer column where invalid entries are nulls.
func FromNullInts(name string, in []null.Int) *Series[int64] {
	values := make([]int64, len(in))
	valid := make([]bool, len(in))
	for i, v := range in {
		values[i] = v.Int64
		valid[i] = v.Valid
	}
	s, _ := NewWithNulls(name, values, valid)
	return s
}

// FromNullStrings builds a string column where invalid entries are nulls.
func FromNullStrings(name string, in []null.String) *Series[string] {
	values := make([]string, len(in))
	valid := make([]bool, len(in))
	for i, v := range in {
		values[i] = v.String
		valid[i] = v.Valid
	}
	s, _ := NewWithNulls(name, values, valid)
	return s
}
