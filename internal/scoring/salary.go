package scoring

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseSalaryRange extracts the two numeric bounds from a free-text salary
// range such as "$48,000 - $72,000" or "48k-72k". A single number is treated
// as both bounds. ok is false when no number is present.
func ParseSalaryRange(s string) (lo, hi int, ok bool) {
	nums := extractNumbers(s)
	if len(nums) == 0 {
		return 0, 0, false
	}
	lo = nums[0]
	hi = nums[0]
	if len(nums) > 1 {
		hi = nums[1]
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// FormatSalaryRange renders the bounds in the "$48,000 - $72,000" form used
// across job matches.
func FormatSalaryRange(lo, hi int) string {
	return fmt.Sprintf("$%s - $%s", groupThousands(lo), groupThousands(hi))
}

func extractNumbers(s string) []int {
	var nums []int
	var digits strings.Builder

	flush := func(kSuffix bool) {
		if digits.Len() == 0 {
			return
		}
		n, err := strconv.Atoi(digits.String())
		digits.Reset()
		if err != nil {
			return
		}
		if kSuffix {
			n *= 1000
		}
		nums = append(nums, n)
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r == ',' && digits.Len() > 0:
			// thousands separator inside a number
		case (r == 'k' || r == 'K') && digits.Len() > 0:
			flush(true)
		default:
			flush(false)
		}
	}
	flush(false)

	return nums
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
