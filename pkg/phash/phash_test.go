package phash

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   uint64
		wantOK bool
	}{
		{"all zeros", "0000000000000000", 0, true},
		{"all ones", "ffffffffffffffff", 0xffffffffffffffff, true},
		{"mixed", "8f3a91c2d4e5b607", 0x8f3a91c2d4e5b607, true},
		{"uppercase hex", "8F3A91C2D4E5B607", 0x8f3a91c2d4e5b607, true},
		{"trims whitespace", "  8f3a91c2d4e5b607  ", 0x8f3a91c2d4e5b607, true},
		{"empty", "", 0, false},
		{"too short", "8f3a91c2", 0, false},
		{"too long", "8f3a91c2d4e5b60712", 0, false},
		{"non-hex characters", "8f3a91c2d4e5b60z", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %#x, want %#x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		h1   string
		h2   string
		want int
	}{
		{"identical", "8f3a91c2d4e5b607", "8f3a91c2d4e5b607", 0},
		{"one bit differs", "0000000000000000", "0000000000000001", 1},
		{"one nibble flipped", "0000000000000000", "000000000000000f", 4},
		{"all bits differ", "0000000000000000", "ffffffffffffffff", 64},
		{"first hash empty", "", "8f3a91c2d4e5b607", InfiniteDistance},
		{"second hash empty", "8f3a91c2d4e5b607", "", InfiniteDistance},
		{"both empty", "", "", InfiniteDistance},
		{"malformed first", "not-a-hash", "8f3a91c2d4e5b607", InfiniteDistance},
		{"mislength second", "8f3a91c2d4e5b607", "8f3a", InfiniteDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.h1, tt.h2)
			if got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	h1 := "8f3a91c2d4e5b607"
	h2 := "8f3a91c2d4e5b6ff"
	if Distance(h1, h2) != Distance(h2, h1) {
		t.Errorf("Distance is not symmetric: %d vs %d", Distance(h1, h2), Distance(h2, h1))
	}
}

func TestAreSimilar(t *testing.T) {
	base := "0000000000000000"

	tests := []struct {
		name      string
		h1        string
		h2        string
		threshold int
		want      bool
	}{
		{"identical hashes", base, base, DefaultThreshold, true},
		{"within threshold", base, "0000000000000aff", DefaultThreshold, true},   // 10 bits
		{"exactly at threshold", base, "0000000000000fff", DefaultThreshold, true}, // 12 bits
		{"one past threshold", base, "0000000000001fff", DefaultThreshold, false},  // 13 bits
		{"zero threshold exact match only", base, "0000000000000001", 0, false},
		{"malformed never similar even at max threshold", "", base, HashBits, false},
		{"infinite distance exceeds hash width threshold", "bogus", base, HashBits, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AreSimilar(tt.h1, tt.h2, tt.threshold)
			if got != tt.want {
				t.Errorf("AreSimilar(%q, %q, %d) = %v, want %v", tt.h1, tt.h2, tt.threshold, got, tt.want)
			}
		})
	}
}
