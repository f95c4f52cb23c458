// Package gift128 implements GIFT-128, a lightweight 128-bit block cipher,
// in its "fixsliced" representation: a block is packed into four 32-bit
// words in a permuted bit order such that the linear layer of five
// consecutive rounds reduces to rotations and swap-move operations on
// those four words.
//
// Alongside the plain cipher, this package implements a first-order
// Boolean-masked variant: every bitwise primitive (AND, OR, XOR, shift,
// rotate, byte-swap) has a two-share gadget so that no intermediate word
// depends on the secret in isolation. The masked and plain code paths
// share the same round, linear-layer, and key-schedule logic through the
// wordOps generic constraint; only the representation of a word differs.
//
// This package aims to be a clear, bit-exact implementation matched
// against the published GIFT-128 test vectors, not a hardened
// side-channel-resistant library: masking here defeats first-order
// leakage only, and mask generation, constant-time memory I/O, and
// multi-block modes above ECB-style chunking are the caller's
// responsibility.
package gift128
