package gift128

// sbox applies the GIFT-128 4-bit S-box to all 32 nibbles spanning the
// four state words in parallel, via seven bitwise gate operations. Works
// unchanged over plain and masked state because it is expressed purely
// in And/Or/Xor/XorConst gadgets.
func sbox[W wordOps[W]](s state[W]) state[W] {
	s.s1 = s.s1.Xor(s.s0.And(s.s2))
	s.s0 = s.s0.Xor(s.s1.And(s.s3))
	s.s2 = s.s2.Xor(s.s0.Or(s.s1))
	s.s3 = s.s3.Xor(s.s2)
	s.s1 = s.s1.Xor(s.s3)
	s.s3 = s.s3.XorConst(0xffffffff)
	s.s2 = s.s2.Xor(s.s0.And(s.s1))
	return s
}

// invSbox is the inverse of sbox.
func invSbox[W wordOps[W]](s state[W]) state[W] {
	s.s2 = s.s2.Xor(s.s3.And(s.s1))
	s.s0 = s.s0.XorConst(0xffffffff)
	s.s1 = s.s1.Xor(s.s0)
	s.s0 = s.s0.Xor(s.s2)
	s.s2 = s.s2.Xor(s.s3.Or(s.s1))
	s.s3 = s.s3.Xor(s.s1.And(s.s0))
	s.s1 = s.s1.Xor(s.s3.And(s.s2))
	return s
}
