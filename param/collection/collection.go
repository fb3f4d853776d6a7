package collection

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Collection receives converted elements in textual order.
type Collection interface {
	// Add appends or inserts v.
	Add(v interface{}) error
	// Len returns the number of held elements.
	Len() int
	// Values returns the elements in iteration order.
	Values() []interface{}
	// Value returns what a conversion hands back to the caller.
	Value() interface{}
}

// List keeps insertion order and duplicates. Its conversion value is the
// plain []interface{} slice.
type List struct {
	items []interface{}
}

// NewList creates an empty list.
func NewList() *List { return &List{items: []interface{}{}} }

func (l *List) Add(v interface{}) error {
	l.items = append(l.items, v)
	return nil
}

func (l *List) Len() int { return len(l.items) }

func (l *List) Values() []interface{} { return l.items }

func (l *List) Value() interface{} { return l.items }

// HashSet keeps unique elements, iteration follows first insertion.
type HashSet struct {
	index map[interface{}]struct{}
	items []interface{}
}

// NewHashSet creates an empty set.
func NewHashSet() *HashSet {
	return &HashSet{index: map[interface{}]struct{}{}}
}

func (s *HashSet) Add(v interface{}) error {
	key, err := hashKey(v)
	if err != nil {
		return err
	}
	if _, ok := s.index[key]; ok {
		return nil
	}
	s.index[key] = struct{}{}
	s.items = append(s.items, v)
	return nil
}

// Contains reports whether v is held.
func (s *HashSet) Contains(v interface{}) bool {
	key, err := hashKey(v)
	if err != nil {
		return false
	}
	_, ok := s.index[key]
	return ok
}

func (s *HashSet) Len() int { return len(s.items) }

func (s *HashSet) Values() []interface{} { return s.items }

func (s *HashSet) Value() interface{} { return s }

// hashKey maps values with pointer identity to a comparable key based on
// their content.
func hashKey(v interface{}) (interface{}, error) {
	switch actual := v.(type) {
	case *big.Int:
		return "big.Int:" + actual.String(), nil
	case decimal.Decimal:
		return "decimal:" + actual.String(), nil
	case time.Time:
		return actual.UnixNano(), nil
	}
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return nil, fmt.Errorf("unhashable set element type %T", v)
	}
	return v, nil
}

// SortedSet keeps unique elements in natural order.
type SortedSet struct {
	items []interface{}
}

// NewSortedSet creates an empty sorted set.
func NewSortedSet() *SortedSet { return &SortedSet{} }

func (s *SortedSet) Add(v interface{}) error {
	var cmpErr error
	idx := sort.Search(len(s.items), func(i int) bool {
		c, err := Compare(s.items[i], v)
		if err != nil {
			cmpErr = err
			return true
		}
		return c >= 0
	})
	if cmpErr != nil {
		return cmpErr
	}
	if idx < len(s.items) {
		if c, _ := Compare(s.items[idx], v); c == 0 {
			return nil
		}
	}
	if len(s.items) == 0 {
		if _, err := Compare(v, v); err != nil {
			return err
		}
	}
	s.items = append(s.items, nil)
	copy(s.items[idx+1:], s.items[idx:])
	s.items[idx] = v
	return nil
}

// First returns the lowest element.
func (s *SortedSet) First() (interface{}, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[0], true
}

// Last returns the highest element.
func (s *SortedSet) Last() (interface{}, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

func (s *SortedSet) Len() int { return len(s.items) }

func (s *SortedSet) Values() []interface{} { return s.items }

func (s *SortedSet) Value() interface{} { return s }
