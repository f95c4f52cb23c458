package gift128

// nibbleRor1/2/3, halfRor4/8/12, and byteRor2/4/6 are the intra-word
// permutations that move nibble/byte/half-word groups a fixed distance
// within each 32-bit word. Each is `(shift-right-and-mask) OR
// (mask-and-shift-left)` over two disjoint bit ranges of the same word,
// which is why it is safe to implement the OR as Xor of two AndConst
// results: AndConst only ever combines a word with a *public* constant
// (never two secret shares), and the two pieces never overlap a bit, so
// XOR and OR agree. That makes these gadgets generic over plain and
// masked words for free — no separate "componentwise" masked variant is
// needed.
func nibbleRor1[W wordOps[W]](x W) W {
	return x.Shr(1).AndConst(0x77777777).Xor(x.AndConst(0x11111111).Shl(3))
}

func nibbleRor2[W wordOps[W]](x W) W {
	return x.Shr(2).AndConst(0x33333333).Xor(x.AndConst(0x33333333).Shl(2))
}

func nibbleRor3[W wordOps[W]](x W) W {
	return x.Shr(3).AndConst(0x11111111).Xor(x.AndConst(0x77777777).Shl(1))
}

func halfRor4[W wordOps[W]](x W) W {
	return x.Shr(4).AndConst(0x0fff0fff).Xor(x.AndConst(0x000f000f).Shl(12))
}

func halfRor8[W wordOps[W]](x W) W {
	return x.Shr(8).AndConst(0x00ff00ff).Xor(x.AndConst(0x00ff00ff).Shl(8))
}

func halfRor12[W wordOps[W]](x W) W {
	return x.Shr(12).AndConst(0x000f000f).Xor(x.AndConst(0x0fff0fff).Shl(4))
}

func byteRor2[W wordOps[W]](x W) W {
	return x.Shr(2).AndConst(0x3f3f3f3f).Xor(x.AndConst(0x03030303).Shl(6))
}

func byteRor4[W wordOps[W]](x W) W {
	return x.Shr(4).AndConst(0x0f0f0f0f).Xor(x.AndConst(0x0f0f0f0f).Shl(4))
}

func byteRor6[W wordOps[W]](x W) W {
	return x.Shr(6).AndConst(0x03030303).Xor(x.AndConst(0x3f3f3f3f).Shl(2))
}
