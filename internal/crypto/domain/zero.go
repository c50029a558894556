package domain

// Zero overwrites a byte slice with zeros to clear key material or plaintext from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
