package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

// ShortSHA256 returns the first n hex characters of the content hash.
// Used for source URLs and executable unit IDs, where the full digest is noise.
func ShortSHA256(input []byte, n int) string {
	sum := SHA256Bytes(input)
	if n <= 0 || n > len(sum) {
		return sum
	}
	return sum[:n]
}
