package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display formatting for the dashboard surfaces. Amounts are USD; view
// counts abbreviate above a thousand (12.5K, 3.4M).

func Currency(amount float64) string {
	negative := amount < 0 || (amount == 0 && math.Signbit(amount))
	cents := math.Round(math.Abs(amount) * 100)
	whole := int64(cents / 100)
	fraction := int64(cents) % 100

	out := "$" + groupThousands(whole) + fmt.Sprintf(".%02d", fraction)
	if negative {
		return "-" + out
	}
	return out
}

func CompactCount(count int64) string {
	switch {
	case count >= 1_000_000:
		return trimCompact(float64(count)/1_000_000) + "M"
	case count >= 1_000:
		return trimCompact(float64(count)/1_000) + "K"
	default:
		return strconv.FormatInt(count, 10)
	}
}

func trimCompact(value float64) string {
	// One decimal place, matching the dashboard's 1.2K / 3.4M style.
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func groupThousands(value int64) string {
	raw := strconv.FormatInt(value, 10)
	if len(raw) <= 3 {
		return raw
	}
	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}
