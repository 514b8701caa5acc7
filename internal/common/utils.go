package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Password buffers are wiped this way as soon as their content has
// been handed over, so the plaintext does not linger in memory longer than
// needed.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
