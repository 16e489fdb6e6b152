package sorting

import "github.com/hasbyte1/go-declarative-utils/equality"

// Ranking maps values to their position in an explicit enumeration.
type Ranking struct {
	order   []any
	buckets map[[32]byte][]int
}

// NewRanking indexes order. When a value occurs more than once its first
// position is its rank.
func NewRanking(order []any) *Ranking {
	r := &Ranking{
		order:   order,
		buckets: make(map[[32]byte][]int, len(order)),
	}
	for i, v := range order {
		fp := equality.Fingerprint(v)
		r.buckets[fp] = append(r.buckets[fp], i)
	}
	return r
}

// Rank returns the position of v in the enumeration, or Len() when v does
// not occur.
func (r *Ranking) Rank(v any) int {
	for _, i := range r.buckets[equality.Fingerprint(v)] {
		if equality.Deep(r.order[i], v) {
			return i
		}
	}
	return len(r.order)
}

// Len returns the number of ranked positions.
func (r *Ranking) Len() int { return len(r.order) }
