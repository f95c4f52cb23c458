package gift128

import "fmt"

// SizeError reports a buffer or slice whose length does not satisfy an
// operation's size contract. It is returned, never panicked, so callers
// can recover from a malformed buffer the same way crypto/cipher's own
// KeySizeError/block-size errors let callers recover.
type SizeError struct {
	Operand  string // "plaintext", "ciphertext", "state masks", ...
	Got      int
	Expected string // human-readable constraint, e.g. "multiple of 16"
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("gift128: invalid %s length %d, expected %s", e.Operand, e.Got, e.Expected)
}
