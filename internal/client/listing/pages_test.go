package listing

import (
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestWindow(t *testing.T) {
	const E = Ellipsis
	tests := []struct {
		current, last int
		want          []int
	}{
		{1, 0, nil},
		{1, 1, []int{1}},
		{1, 3, []int{1, 2, 3}},
		{1, 5, []int{1, 2, 3, 4, 5}},
		{1, 10, []int{1, 2, 3, 4, 5, E, 10}},
		{5, 10, []int{1, E, 3, 4, 5, 6, 7, E, 10}},
		{3, 10, []int{1, 2, 3, 4, 5, E, 10}},
		{6, 10, []int{1, E, 4, 5, 6, 7, 8, E, 10}},
		{10, 10, []int{1, E, 6, 7, 8, 9, 10}},
		{4, 6, []int{1, 2, 3, 4, 5, 6}},
		{99, 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Window(tt.current, tt.last), "Window(%d, %d)", tt.current, tt.last)
	}
}

func TestWindow_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		last := rapid.IntRange(1, 200).Draw(t, "last")
		current := rapid.IntRange(1, last).Draw(t, "current")

		w := Window(current, last)

		assert.Equal(t, 1, w[0])
		assert.Equal(t, last, w[len(w)-1])
		assert.Contains(t, w, current)

		numbered, prev := 0, 0
		for i, p := range w {
			if p == Ellipsis {
				assert.NotEqual(t, Ellipsis, w[i-1], "no adjacent ellipses")
				continue
			}
			numbered++
			assert.Greater(t, p, prev)
			prev = p
		}
		assert.LessOrEqual(t, numbered, maxVisiblePages+2)
	})
}

func TestRange(t *testing.T) {
	p := models.Page[int]{Total: 23, PageSize: 10, CurrentPage: 3, LastPage: 3}
	assert.Equal(t, "Showing 21 to 23 of 23 entries", Range(p))

	p.CurrentPage = 1
	assert.Equal(t, "Showing 1 to 10 of 23 entries", Range(p))

	assert.Empty(t, Range(models.Page[int]{}))
}

func TestBounds_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 50).Draw(t, "size")
		total := rapid.IntRange(1, 1000).Draw(t, "total")
		last := (total + size - 1) / size
		current := rapid.IntRange(1, last).Draw(t, "current")

		from, to := Bounds(models.Page[int]{Total: total, PageSize: size, CurrentPage: current, LastPage: last})

		assert.GreaterOrEqual(t, from, 1)
		assert.LessOrEqual(t, from, to)
		assert.LessOrEqual(t, to, total)
		assert.LessOrEqual(t, to-from+1, size)
		if current == last {
			assert.Equal(t, total, to)
		}
	})
}
