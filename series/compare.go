package series

import "golang.org/x/exp/constraints"

// Between marks values inside [low, high], bounds inclusive. Nulls are never
// between anything.
func Between[T constraints.Ordered](s *Series[T], low, high T) Mask {
	return compare(s, func(v T) bool { return low <= v && v <= high })
}

// Greater marks values strictly greater than x.
func Greater[T constraints.Ordered](s *Series[T], x T) Mask {
	return compare(s, func(v T) bool { return v > x })
}

func compare[T any](s *Series[T], pred func(T) bool) Mask {
	m := make(Mask, s.Len())
	for i, v := range s.values {
		if s.IsNull(i) {
			continue
		}
		m[i] = pred(v)
	}
	return m
}
