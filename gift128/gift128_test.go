package gift128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type katCase struct {
	name       string
	key        Key
	plaintext  Block
	ciphertext Block
}

var katCases = []katCase{
	{
		name:       "all-zero",
		key:        Key{},
		plaintext:  Block{},
		ciphertext: Block{0xcd, 0x0b, 0xd7, 0x38, 0x38, 0x8a, 0xd3, 0xf6, 0x68, 0xb1, 0x5a, 0x36, 0xce, 0xb6, 0xff, 0x92},
	},
	{
		name:       "key-equals-plaintext",
		key:        Key{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10},
		plaintext:  Block{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10},
		ciphertext: Block{0x84, 0x22, 0x24, 0x1a, 0x6d, 0xbf, 0x5a, 0x93, 0x46, 0xaf, 0x46, 0x84, 0x09, 0xee, 0x01, 0x52},
	},
	{
		name:       "distinct-key-and-plaintext",
		key:        Key{0xd0, 0xf5, 0xc5, 0x9a, 0x77, 0x00, 0xd3, 0xe7, 0x99, 0x02, 0x8f, 0xa9, 0xf9, 0x0a, 0xd8, 0x37},
		plaintext:  Block{0xe3, 0x9c, 0x14, 0x1f, 0xa5, 0x7d, 0xba, 0x43, 0xf0, 0x8a, 0x85, 0xb6, 0xa9, 0x1f, 0x86, 0xc1},
		ciphertext: Block{0x13, 0xed, 0xe6, 0x7c, 0xbd, 0xcc, 0x3d, 0xbf, 0x40, 0x0a, 0x62, 0xd6, 0x97, 0x72, 0x65, 0xea},
	},
}

func TestEncrypt(t *testing.T) {
	for _, c := range katCases {
		t.Run(c.name, func(t *testing.T) {
			ciphertext := make([]byte, BlockSize)
			require.NoError(t, Encrypt(c.plaintext[:], c.key, ciphertext))
			assert.Equal(t, c.ciphertext[:], ciphertext)
		})
	}
}

func TestDecrypt(t *testing.T) {
	for _, c := range katCases {
		t.Run(c.name, func(t *testing.T) {
			plaintext := make([]byte, BlockSize)
			require.NoError(t, Decrypt(c.ciphertext[:], c.key, plaintext))
			assert.Equal(t, c.plaintext[:], plaintext)
		})
	}
}

func TestEncryptBlockMatchesEncrypt(t *testing.T) {
	for _, c := range katCases {
		rk := PrecomputeRoundKeys(c.key)
		assert.Equal(t, c.ciphertext, EncryptBlock(c.plaintext, rk))
		assert.Equal(t, c.plaintext, DecryptBlock(c.ciphertext, rk))
	}
}

func TestBitslicedRoundTrip(t *testing.T) {
	for _, c := range katCases {
		rk := PrecomputeRoundKeys(c.key)
		encrypted := BitslicedEncryptBlock(c.plaintext, rk)
		assert.Equal(t, c.plaintext, BitslicedDecryptBlock(encrypted, rk))
	}
}

var maskedKATStateMask = [4]uint32{0x1d54f08e, 0x550aaf8c, 0xb3d27d46, 0x4aafa1b4}

// maskedKATKeyMask returns the big-endian bytes of the four
// maskedKATStateMask words, used as the key mask in the masked KAT tests.
func maskedKATKeyMask() Key {
	var mask Key
	for i := 0; i < 4; i++ {
		v := maskedKATStateMask[i]
		mask[i*4] = byte(v >> 24)
		mask[i*4+1] = byte(v >> 16)
		mask[i*4+2] = byte(v >> 8)
		mask[i*4+3] = byte(v)
	}
	return mask
}

func TestEncryptMaskedMatchesKAT(t *testing.T) {
	keyMask := maskedKATKeyMask()
	for _, c := range katCases {
		t.Run(c.name, func(t *testing.T) {
			maskedKey := MaskKey(c.key, keyMask)
			ciphertext := make([]byte, BlockSize)
			err := EncryptMasked(c.plaintext[:], [][4]uint32{maskedKATStateMask}, maskedKey, ciphertext)
			require.NoError(t, err)
			assert.Equal(t, c.ciphertext[:], ciphertext)
		})
	}
}

func TestDecryptMaskedMatchesKAT(t *testing.T) {
	keyMask := maskedKATKeyMask()
	for _, c := range katCases {
		t.Run(c.name, func(t *testing.T) {
			maskedKey := MaskKey(c.key, keyMask)
			plaintext := make([]byte, BlockSize)
			err := DecryptMasked(c.ciphertext[:], [][4]uint32{maskedKATStateMask}, maskedKey, plaintext)
			require.NoError(t, err)
			assert.Equal(t, c.plaintext[:], plaintext)
		})
	}
}

func TestEncryptMaskedBlockRoundTrip(t *testing.T) {
	key := Key{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	keyMask := Key{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00}
	mask := [4]uint32{0xdeadbeef, 0x01234567, 0x89abcdef, 0xfeedface}

	maskedKey := MaskKey(key, keyMask)
	rk := PrecomputeMaskedRoundKeys(maskedKey)

	plaintext := Block{0xca, 0xfe, 0xba, 0xbe, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb}
	ciphertext := EncryptMaskedBlock(plaintext, mask, rk)
	recovered := DecryptMaskedBlock(ciphertext, mask, rk)
	assert.Equal(t, plaintext, recovered)

	plainRK := PrecomputeRoundKeys(key)
	assert.Equal(t, EncryptBlock(plaintext, plainRK), ciphertext)
}

func TestMaskBlockRoundTrip(t *testing.T) {
	block := Block{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	masks := Block{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 255, 254, 253, 252, 251, 250}
	assert.Equal(t, block, UnmaskBlock(MaskBlock(block, masks)))
}

func TestMaskKeyRoundTrip(t *testing.T) {
	key := Key{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	masks := Key{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 255, 254, 253, 252, 251, 250}
	assert.Equal(t, key, UnmaskKey(MaskKey(key, masks)))
}

func TestEncryptRejectsMismatchedLengths(t *testing.T) {
	var key Key

	err := Encrypt(make([]byte, 17), key, make([]byte, 17))
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "plaintext", sizeErr.Operand)

	err = Encrypt(make([]byte, 16), key, make([]byte, 32))
	require.Error(t, err)
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "ciphertext", sizeErr.Operand)
}

func TestEncryptAcceptsEmptyInput(t *testing.T) {
	var key Key
	err := Encrypt(nil, key, nil)
	assert.NoError(t, err)
}

func TestEncryptMaskedRejectsWrongMaskCount(t *testing.T) {
	var key MaskedKey
	err := EncryptMasked(make([]byte, 32), [][4]uint32{{}}, key, make([]byte, 32))
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "state masks", sizeErr.Operand)
}

func TestEncryptDecryptRoundTripMultiBlock(t *testing.T) {
	key := Key{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	plaintext := make([]byte, BlockSize*3)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	ciphertext := make([]byte, len(plaintext))
	require.NoError(t, Encrypt(plaintext, key, ciphertext))

	recovered := make([]byte, len(plaintext))
	require.NoError(t, Decrypt(ciphertext, key, recovered))

	assert.Equal(t, plaintext, recovered)
}
