package series

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Grouped is a Series partitioned by a key column. Keys are kept in
// ascending order.
type Grouped[K constraints.Ordered, T comparable] struct {
	name   string
	keys   []K
	groups map[K]*Series[T]
}

// GroupBy partitions s by the parallel key column by. Rows whose key is null
// are dropped.
func GroupBy[K constraints.Ordered, T comparable](by *Series[K], s *Series[T]) (*Grouped[K, T], error) {
	if by.Len() != s.Len() {
		return nil, fmt.Errorf("group %q by %q: %d values but %d keys", s.Name(), by.Name(), s.Len(), by.Len())
	}

	g := &Grouped[K, T]{
		name:   s.Name(),
		groups: make(map[K]*Series[T]),
	}

	for i := 0; i < s.Len(); i++ {
		k, ok := by.At(i)
		if !ok {
			continue
		}

		grp, exists := g.groups[k]
		if !exists {
			grp = &Series[T]{name: s.name}
			g.groups[k] = grp
			g.keys = append(g.keys, k)
		}
		grp.values = append(grp.values, s.values[i])
		grp.labels = append(grp.labels, s.Label(i))
		if s.IsNull(i) && grp.valid == nil {
			grp.valid = make([]bool, len(grp.values)-1, cap(grp.values))
			for j := range grp.valid {
				grp.valid[j] = true
			}
		}
		if grp.valid != nil {
			grp.valid = append(grp.valid, !s.IsNull(i))
		}
	}

	slices.Sort(g.keys)

	return g, nil
}

func (g *Grouped[K, T]) Name() string { return g.name }

// Len is the number of groups.
func (g *Grouped[K, T]) Len() int { return len(g.keys) }

// Keys returns the group keys in ascending order.
func (g *Grouped[K, T]) Keys() []K {
	return append([]K(nil), g.keys...)
}

// Group returns the members of group k, or nil if there is no such group.
func (g *Grouped[K, T]) Group(k K) *Series[T] {
	grp, ok := g.groups[k]
	if !ok {
		return nil
	}
	return grp.clone()
}

// NUnique counts the distinct non-null values in each group. The result is
// indexed by group key.
func (g *Grouped[K, T]) NUnique() *Series[int] {
	out := &Series[int]{
		name:   g.name,
		values: make([]int, len(g.keys)),
		labels: make([]string, len(g.keys)),
	}
	for i, k := range g.keys {
		out.values[i] = len(Unique(g.groups[k]))
		out.labels[i] = FormatValue(k)
	}
	return out
}
