package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/intersesh/crypto/blockcipher"
	"github.com/intersesh/crypto/gift128"
)

// gcipher adapts gift128's precomputed-round-key single-block API to
// blockcipher.Cipher, so the plain (unmasked) path can run through
// blockcipher.NewECBMode.
type gcipher struct {
	rk gift128.RoundKeys
}

func (g gcipher) Encrypt(b blockcipher.Block) blockcipher.Block {
	return blockcipher.Block(gift128.EncryptBlock(gift128.Block(b), g.rk))
}

func (g gcipher) Decrypt(b blockcipher.Block) blockcipher.Block {
	return blockcipher.Block(gift128.DecryptBlock(gift128.Block(b), g.rk))
}

func mustKey(envVar string) gift128.Key {
	raw := []byte(os.Getenv(envVar))
	if len(raw) != gift128.KeySize {
		log.Fatalf("%s must be exactly %d bytes, got %d", envVar, gift128.KeySize, len(raw))
	}
	var key gift128.Key
	copy(key[:], raw)
	return key
}

func main() {
	masked := flag.Bool("masked", false, "run the masked encrypt/decrypt path, with key and state masks read from GIFT128_KEY_MASK and GIFT128_BLOCK_MASK")
	flag.Parse()

	op := flag.Arg(0)
	if op != "encrypt" && op != "decrypt" {
		log.Fatal("invalid op: ", op)
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("error reading from stdin: ", err)
	}

	if *masked {
		runMasked(op, in)
		return
	}

	key := mustKey("GIFT128_KEY")
	cipher := gcipher{rk: gift128.PrecomputeRoundKeys(key)}
	mode := blockcipher.NewECBMode(cipher)

	var out []byte
	switch op {
	case "encrypt":
		out = mode.Encrypt(in)
	case "decrypt":
		out = mode.Decrypt(in)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal("failed to write to stdout: ", err)
	}
}

// runMasked drives gift128's masked single-block entry points directly:
// a mask is only meaningful per block, so it can't be hidden behind the
// blockcipher.Cipher interface the unmasked path uses. GIFT128_KEY_MASK
// and GIFT128_BLOCK_MASK fix the mask material so a run is reproducible
// (useful for demonstrating the masked path against a known answer);
// blockcipher.RandomMasks is the library's answer for callers who want
// fresh masks per block instead, and is exercised by the test suite.
func runMasked(op string, in []byte) {
	key := mustKey("GIFT128_KEY")
	keyMask := mustKey("GIFT128_KEY_MASK")
	maskedKey := gift128.MaskKey(key, keyMask)
	rk := gift128.PrecomputeMaskedRoundKeys(maskedKey)

	blockMaskBytes := mustKey("GIFT128_BLOCK_MASK")
	blockMask := [4]uint32{
		beUint32(blockMaskBytes[0:4]),
		beUint32(blockMaskBytes[4:8]),
		beUint32(blockMaskBytes[8:12]),
		beUint32(blockMaskBytes[12:16]),
	}

	blocks := blockcipher.Blockify(in, gift128.BlockSize)

	var out []byte
	for _, b := range blocks {
		var block gift128.Block
		copy(block[:], b[:])

		var result gift128.Block
		switch op {
		case "encrypt":
			result = gift128.EncryptMaskedBlock(block, blockMask, rk)
		case "decrypt":
			result = gift128.DecryptMaskedBlock(block, blockMask, rk)
		}
		out = append(out, result[:]...)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal("failed to write to stdout: ", err)
	}
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
