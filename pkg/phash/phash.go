package phash

import (
	"math/bits"
	"strconv"
	"strings"
)

const (
	// HashBits is the width of a thumbnail perceptual hash.
	HashBits = 64

	// HexLen is the expected length of a hex-encoded hash.
	HexLen = HashBits / 4

	// InfiniteDistance is returned for absent or malformed hashes. It is
	// larger than any real Hamming distance, so every similarity check
	// against it fails without the caller needing an error path.
	InfiniteDistance = HashBits + 1

	// DefaultThreshold is the Hamming distance (in bits) at or below which
	// two thumbnails are considered the same image.
	DefaultThreshold = 12
)

// Parse decodes a hex-encoded 64-bit perceptual hash. The second return is
// false for empty, mislength, or non-hex input.
func Parse(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if len(s) != HexLen {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Distance returns the Hamming distance between two hex-encoded hashes.
// If either hash is absent or malformed, it returns InfiniteDistance.
func Distance(h1, h2 string) int {
	a, ok := Parse(h1)
	if !ok {
		return InfiniteDistance
	}
	b, ok := Parse(h2)
	if !ok {
		return InfiniteDistance
	}
	return bits.OnesCount64(a ^ b)
}

// AreSimilar reports whether two hashes are within threshold differing bits.
// Malformed input is never similar.
func AreSimilar(h1, h2 string, threshold int) bool {
	return Distance(h1, h2) <= threshold
}
