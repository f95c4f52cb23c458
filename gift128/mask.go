package gift128

// MaskedWord is a first-order Boolean-masked 32-bit word: an ordered pair
// (X, M) with the invariant that the plaintext value equals X^M. Every
// gadget below preserves that invariant, and the AND/OR gadgets never
// combine the two shares of the same operand (a.X with a.M, or b.X with
// b.M) in the same arithmetic expression — that is what keeps them first-order
// secure against a single-probe side-channel adversary.
//
// The zero value (X, M both zero) represents the plaintext value zero.
type MaskedWord struct {
	X uint32
	M uint32
}

// MakeShares builds a MaskedWord representing v, masked with m.
func MakeShares(v, m uint32) MaskedWord {
	return MaskedWord{X: v ^ m, M: m}
}

// RecoverShares returns the plaintext value a MaskedWord represents.
func (a MaskedWord) RecoverShares() uint32 {
	return a.X ^ a.M
}

// Remask replaces a's mask share with m without changing the plaintext
// value it represents. (x, m) and (x^m^m', m') represent the same value.
func (a MaskedWord) Remask(m uint32) MaskedWord {
	return MaskedWord{X: a.X ^ a.M ^ m, M: m}
}

func (a MaskedWord) Xor(b MaskedWord) MaskedWord {
	return MaskedWord{X: a.X ^ b.X, M: a.M ^ b.M}
}

// XorConst XORs a public constant into a masked word. A public XOR only
// ever touches share 0 — the mask share is untouched, which is what
// keeps a constant (non-secret) XOR free of any masking cost.
func (a MaskedWord) XorConst(k uint32) MaskedWord {
	return MaskedWord{X: a.X ^ k, M: a.M}
}

// AndConst ANDs a with a public constant k, zeroing every masked bit
// outside k the way a plain a&k would. This is the non-negated form:
// computing (X&k, M&k) rather than (!(X&k), !(M&k)). Either form
// recovers to a&k, but only this one leaves both shares zero outside k,
// exactly as the plain word's a&k does. See DESIGN.md.
func (a MaskedWord) AndConst(k uint32) MaskedWord {
	return MaskedWord{X: a.X & k, M: a.M & k}
}

func (a MaskedWord) OrConst(k uint32) MaskedWord {
	return MaskedWord{X: a.X &^ k, M: a.M | k}
}

// And is the masked-AND gadget: the unique first-order-secure formula
// for this representation. Reproduced bit-exactly — do not simplify.
func (a MaskedWord) And(b MaskedWord) MaskedWord {
	z0 := (a.X & b.X) ^ (a.X | ^b.M)
	z1 := (a.M & b.X) ^ (a.M | ^b.M)
	return MaskedWord{X: z0, M: z1}
}

// Or is the masked-OR gadget, the dual of And.
func (a MaskedWord) Or(b MaskedWord) MaskedWord {
	z0 := (a.X & b.X) ^ (a.X | b.M)
	z1 := (a.M | b.X) ^ (a.M & b.M)
	return MaskedWord{X: z0, M: z1}
}

func (a MaskedWord) Not() MaskedWord {
	return MaskedWord{X: ^a.X, M: a.M}
}

func (a MaskedWord) Shl(n uint) MaskedWord {
	return MaskedWord{X: a.X << n, M: a.M << n}
}

func (a MaskedWord) Shr(n uint) MaskedWord {
	return MaskedWord{X: a.X >> n, M: a.M >> n}
}

func (a MaskedWord) RotateRight(n uint) MaskedWord {
	return MaskedWord{X: word(a.X).RotateRight(n).u32(), M: word(a.M).RotateRight(n).u32()}
}

func (a MaskedWord) SwapBytes() MaskedWord {
	return MaskedWord{X: word(a.X).SwapBytes().u32(), M: word(a.M).SwapBytes().u32()}
}

func (a word) u32() uint32 { return uint32(a) }

// MaskedByte is the 8-bit counterpart of MaskedWord, used only at the
// byte-packing boundary.
type MaskedByte struct {
	B  byte
	Mu byte
}

// MakeByteShares builds a MaskedByte representing v, masked with m.
func MakeByteShares(v, m byte) MaskedByte {
	return MaskedByte{B: v ^ m, Mu: m}
}

// RecoverByteShares returns the plaintext byte a MaskedByte represents.
func (b MaskedByte) RecoverByteShares() byte {
	return b.B ^ b.Mu
}
