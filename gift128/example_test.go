package gift128_test

import (
	"log"

	"github.com/intersesh/crypto/gift128"
)

func Example() {
	// A GIFT-128 key is always exactly 16 bytes.
	key := gift128.Key{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}

	plaintext := []byte{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	ciphertext := make([]byte, len(plaintext))

	if err := gift128.Encrypt(plaintext, key, ciphertext); err != nil {
		log.Fatal(err)
	}

	log.Println(ciphertext)
}

func Example_masked() {
	key := gift128.Key{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	var keyMask gift128.Key // an all-zero mask is insecure; production callers draw one with blockcipher.RandomBytes(16)

	maskedKey := gift128.MaskKey(key, keyMask)

	plaintext := []byte{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	ciphertext := make([]byte, len(plaintext))
	stateMasks := [][4]uint32{{}}

	if err := gift128.EncryptMasked(plaintext, stateMasks, maskedKey, ciphertext); err != nil {
		log.Fatal(err)
	}

	log.Println(ciphertext)
}
