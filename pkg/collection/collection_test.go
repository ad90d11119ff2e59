package collection

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.Empty(t, Map(nil, strconv.Itoa))
}

func TestFilterReject(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	assert.Equal(t, []int{1, 3}, Reject([]int{1, 2, 3, 4}, even))
	assert.Nil(t, Filter([]int{1, 3}, even))
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{1, 2, 3}, func(n int) bool { return n > 1 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = First([]int{1, 2, 3}, func(n int) bool { return n > 9 })
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, func(s string) bool { return s == "b" }))
	assert.False(t, Contains([]string{"a", "b"}, func(s string) bool { return s == "z" }))
}

func TestReduce(t *testing.T) {
	got := Reduce([]string{"a", "b", "c"}, "", func(carry, s string) string { return carry + s })
	assert.Equal(t, "abc", got)
}

func TestSumInt64(t *testing.T) {
	type line struct{ price, qty int64 }

	lines := []line{{100, 2}, {50, 1}}
	total := SumInt64(lines, func(l line) int64 { return l.price * l.qty })
	assert.Equal(t, int64(250), total)

	assert.Zero(t, SumInt64(nil, func(l line) int64 { return l.price }))
}

func TestMaxInt64(t *testing.T) {
	ids := []int64{7, 41, 3}
	got := MaxInt64(ids, func(n int64) int64 { return n })
	assert.Equal(t, int64(41), got)

	// Empty input yields 0, so the next value after max is always 1.
	assert.Zero(t, MaxInt64(nil, func(n int64) int64 { return n }))
}
