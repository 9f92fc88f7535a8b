package series

// Mask is a per-position boolean result, as produced by a column-wise
// predicate.
type Mask []bool

func (m Mask) Not() Mask {
	out := make(Mask, len(m))
	for i, v := range m {
		out[i] = !v
	}
	return out
}

// And combines two masks of equal length position by position.
func (m Mask) And(other Mask) Mask {
	if len(m) != len(other) {
		panic("series: And on masks of different length")
	}
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out
}

// All reports whether every position is true. An empty mask is vacuously
// true.
func (m Mask) All() bool {
	for _, v := range m {
		if !v {
			return false
		}
	}
	return true
}

func (m Mask) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// First returns the position of the first true entry, or -1.
func (m Mask) First() int {
	for i, v := range m {
		if v {
			return i
		}
	}
	return -1
}
