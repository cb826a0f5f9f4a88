package utils

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/dustin/go-humanize"
)

// Alphanumeric is the 62-symbol alphabet used for generated text.
const Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ParseSize parses strings like "500", "10KB", "4MiB", "1GB" or "1,000" into a
// number of bytes. SI suffixes are powers of 1000, IEC suffixes powers of 1024.
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)
	if sizeStr == "" {
		return 0, errors.New("size string is empty")
	}
	n, err := humanize.ParseBytes(sizeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %w", err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("size %q overflows int64", sizeStr)
	}
	return int64(n), nil
}

// FormatSize renders a byte count like "1.0 GB".
func FormatSize(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}

// FillAlphanumeric overwrites every byte of buf with a symbol drawn uniformly
// from Alphanumeric.
func FillAlphanumeric(r *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = Alphanumeric[r.IntN(len(Alphanumeric))]
	}
}

// NewRand returns a generator seeded from the runtime's global source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// IsAlphanumeric reports whether every byte of b is in Alphanumeric.
func IsAlphanumeric(b []byte) bool {
	for _, c := range b {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
