package chunker

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultThreshold is the chunk size used when the user supplies no
// threshold or an unparseable one.
const DefaultThreshold = 5 * humanize.MByte

// ParseThreshold converts a human-readable size string ("5MB", "512KiB",
// "1048576") into a byte count. The empty string selects DefaultThreshold.
// Unparseable or non-positive sizes return ErrInvalidThreshold; callers are
// expected to fall back to DefaultThreshold and surface a notice.
func ParseThreshold(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultThreshold, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidThreshold, s, err)
	}
	if n == 0 || n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidThreshold, s)
	}
	return int64(n), nil
}

// FormatThreshold renders a byte count the way users typed it in ("5 MB").
func FormatThreshold(n int64) string {
	return humanize.Bytes(uint64(n))
}
