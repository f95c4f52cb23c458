package gift128

// state is the fixsliced representation of one 128-bit block: four
// words holding the cipher state between rounds. W is either word
// (plain) or MaskedWord; the plaintext-equivalent of a masked state is
// the componentwise XOR of its two shares (recoverState below).
type state[W wordOps[W]] struct {
	s0, s1, s2, s3 W
}

// recoverState collapses a masked state back to its plaintext-equivalent
// word-for-word, XORing each word's two shares.
func recoverState(s state[MaskedWord]) state[word] {
	return state[word]{
		s0: word(s.s0.RecoverShares()),
		s1: word(s.s1.RecoverShares()),
		s2: word(s.s2.RecoverShares()),
		s3: word(s.s3.RecoverShares()),
	}
}

// roundKeys holds the 80 round-key halves produced by the key schedule,
// consumed ten at a time per quintuple round. It is a fixed-size array,
// not a slice: RoundKeys is computed once per key and is
// stack-allocatable, never heap state shared across callers.
const numRounds = 40
const numRoundKeys = numRounds * 2

type roundKeys[W wordOps[W]] [numRoundKeys]W

// RoundKeys is the plain-word round-key schedule for one key, computed
// by PrecomputeRoundKeys and reused for every block encrypted or
// decrypted under that key.
type RoundKeys = roundKeys[word]

// MaskedRoundKeys is the masked round-key schedule, computed by
// PrecomputeMaskedRoundKeys.
type MaskedRoundKeys = roundKeys[MaskedWord]
