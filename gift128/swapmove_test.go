package gift128

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapMoveSingleIsInvolution(t *testing.T) {
	x := word(0x9a3c7f01)
	once := swapMoveSingle(x, 0x0a0a0a0a, 3)
	twice := swapMoveSingle(once, 0x0a0a0a0a, 3)
	assert.Equal(t, x, twice)
}

func TestSwapMoveIsInvolution(t *testing.T) {
	a, b := word(0x9a3c7f01), word(0x1234abcd)
	a1, b1 := swapMove(a, b, 0x000f000f, 4)
	a2, b2 := swapMove(a1, b1, 0x000f000f, 4)
	assert.Equal(t, a, a2)
	assert.Equal(t, b, b2)
}

func TestSwapMoveSingleMatchesMaskedGadget(t *testing.T) {
	x := word(0x9a3c7f01)
	mx := MakeShares(uint32(x), 0x5a5a5a5a)

	want := swapMoveSingle(x, 0x0a0a0a0a, 3)
	got := swapMoveSingle(mx, 0x0a0a0a0a, 3)
	assert.Equal(t, uint32(want), got.RecoverShares())
}
