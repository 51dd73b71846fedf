package virtualize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_TopOfList(t *testing.T) {
	w := Range(0, 40, 400, 5, 100)
	assert.Equal(t, 0, w.First)
	assert.Equal(t, 15, w.Last) // 10 visible + 5 overscan below
	assert.Equal(t, 0, w.TopPad)
	assert.Equal(t, 84*40, w.BottomPad)
}

func TestRange_MidList(t *testing.T) {
	w := Range(2000, 40, 400, 5, 100)
	assert.Equal(t, 45, w.First) // row 50 visible, minus overscan
	assert.Equal(t, 65, w.Last)
	assert.Equal(t, 45*40, w.TopPad)
	assert.Equal(t, 34*40, w.BottomPad)
}

func TestRange_BottomClamp(t *testing.T) {
	w := Range(100000, 40, 400, 5, 100)
	assert.Equal(t, 99, w.Last)
	assert.Equal(t, 0, w.BottomPad)
	assert.LessOrEqual(t, w.First, w.Last)
}

func TestRange_NegativeScrollClamped(t *testing.T) {
	w := Range(-50, 40, 400, 2, 100)
	assert.Equal(t, 0, w.First)
}

func TestRange_FewerRowsThanViewport(t *testing.T) {
	w := Range(0, 40, 400, 5, 3)
	assert.Equal(t, 0, w.First)
	assert.Equal(t, 2, w.Last)
	assert.Equal(t, 0, w.TopPad)
	assert.Equal(t, 0, w.BottomPad)
}

func TestRange_Empty(t *testing.T) {
	w := Range(0, 40, 400, 5, 0)
	assert.Greater(t, w.First, w.Last)
}
