package gift128

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuintupleRoundIsInvertedByInvQuintupleRound(t *testing.T) {
	s := state[word]{s0: 0x01234567, s1: 0x89abcdef, s2: 0xfedcba98, s3: 0x76543210}
	var rk [10]word
	for i := range rk {
		rk[i] = word(0x10101010 * word(i+1))
	}
	var rc [5]uint32
	copy(rc[:], roundConstants[:5])

	out := quintupleRound(s, rk, rc)
	back := invQuintupleRound(out, rk, rc)
	assert.Equal(t, s, back)
}

func TestFullRoundsIsInvertedByInvRounds(t *testing.T) {
	key := Key{0xd0, 0xf5, 0xc5, 0x9a, 0x77, 0x00, 0xd3, 0xe7, 0x99, 0x02, 0x8f, 0xa9, 0xf9, 0x0a, 0xd8, 0x37}
	rk := PrecomputeRoundKeys(key)

	s := pack(Block{0xe3, 0x9c, 0x14, 0x1f, 0xa5, 0x7d, 0xba, 0x43, 0xf0, 0x8a, 0x85, 0xb6, 0xa9, 0x1f, 0x86, 0xc1})

	out := rounds(s, rk)
	back := invRounds(out, rk)
	assert.Equal(t, s, back)
}

func TestRoundKeyScheduleIsDeterministic(t *testing.T) {
	key := Key{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	a := PrecomputeRoundKeys(key)
	b := PrecomputeRoundKeys(key)
	assert.Equal(t, a, b)
}

func TestMaskedRoundKeysRecoverToPlain(t *testing.T) {
	key := Key{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	keyMask := Key{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00}

	plainRK := PrecomputeRoundKeys(key)
	maskedRK := PrecomputeMaskedRoundKeys(MaskKey(key, keyMask))

	for i := range plainRK {
		assert.Equal(t, uint32(plainRK[i]), maskedRK[i].RecoverShares(), "round key %d", i)
	}
}
