package collection

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/paramconv/param/types"
)

func TestList(t *testing.T) {
	list := NewList()
	assert.Equal(t, []interface{}{}, list.Value())
	for _, v := range []interface{}{"b", "a", "b"} {
		require.NoError(t, list.Add(v))
	}
	assert.Equal(t, []interface{}{"b", "a", "b"}, list.Value())
	assert.Equal(t, 3, list.Len())
}

func TestHashSet(t *testing.T) {
	set := NewHashSet()
	for _, v := range []interface{}{int64(3), int64(1), int64(3)} {
		require.NoError(t, set.Add(v))
	}
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(int64(1)))
	assert.False(t, set.Contains(int64(2)))
	assert.Equal(t, []interface{}{int64(3), int64(1)}, set.Values())

	require.NoError(t, set.Add(big.NewInt(10)))
	require.NoError(t, set.Add(big.NewInt(10)))
	assert.Equal(t, 3, set.Len())

	assert.Error(t, set.Add([]int{1}))
}

func TestSortedSet(t *testing.T) {
	set := NewSortedSet()
	for _, v := range []interface{}{"pear", "apple", "fig", "apple"} {
		require.NoError(t, set.Add(v))
	}
	assert.Equal(t, []interface{}{"apple", "fig", "pear"}, set.Values())
	first, ok := set.First()
	require.True(t, ok)
	assert.Equal(t, "apple", first)
	last, _ := set.Last()
	assert.Equal(t, "pear", last)

	assert.Error(t, set.Add(1))
	assert.Error(t, NewSortedSet().Add(struct{}{}))
}

func TestSortedSet_Decimals(t *testing.T) {
	set := NewSortedSet()
	for _, text := range []string{"2.50", "-1", "2.5", "0.001"} {
		require.NoError(t, set.Add(decimal.RequireFromString(text)))
	}
	require.Equal(t, 3, set.Len())
	assert.Equal(t, "-1", set.Values()[0].(decimal.Decimal).String())
	assert.Equal(t, "2.5", set.Values()[2].(decimal.Decimal).String())
}

func TestCompare(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		a, b   interface{}
		expect int
	}{
		{a: 1, b: 2, expect: -1},
		{a: int8(5), b: int8(5), expect: 0},
		{a: uint64(9), b: uint64(1), expect: 1},
		{a: 1.5, b: 0.5, expect: 1},
		{a: false, b: true, expect: -1},
		{a: now, b: now.Add(time.Second), expect: -1},
		{a: big.NewInt(7), b: big.NewInt(7), expect: 0},
		{a: types.Constant{Name: "B", Ordinal: 1}, b: types.Constant{Name: "A", Ordinal: 0}, expect: 1},
	}
	for _, tc := range testCases {
		actual, err := Compare(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, actual, "%v vs %v", tc.a, tc.b)
	}
	_, err := Compare(1, "1")
	assert.Error(t, err)
}
