// Package ranking post-processes scored candidate lists: it enforces value
// diversity and fixes list sizes.
package ranking

import (
	"github.com/xizzxy/NextMove/internal/scoring"
)

const (
	rentStep  = 25
	rentFloor = 500
)

// UniqueScores returns a copy of values where no two entries are equal.
// Duplicates are nudged downward by 1 until an unused value is found, then
// upward when the bottom of the range is exhausted. Values stay in [0,100].
func UniqueScores(values []int) []int {
	out := make([]int, len(values))
	seen := make(map[int]struct{}, len(values))

	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		adjusted := v
		for {
			if _, taken := seen[adjusted]; !taken {
				break
			}
			if adjusted > 0 {
				adjusted--
				continue
			}
			// Bottom exhausted; walk up from the original value instead.
			adjusted = v + 1
			for {
				if _, taken := seen[adjusted]; !taken || adjusted >= 100 {
					break
				}
				adjusted++
			}
			break
		}
		seen[adjusted] = struct{}{}
		out[i] = adjusted
	}

	return out
}

// UniqueRents returns a copy of rents where at most two entries share a
// value. Extra occurrences are shifted in alternating +-25 increments, never
// below the rent floor of 500.
func UniqueRents(rents []int) []int {
	out := make([]int, len(rents))
	count := make(map[int]int, len(rents))

	for i, rent := range rents {
		if rent < rentFloor {
			rent = rentFloor
		}
		adjusted := rent
		for k := 1; count[adjusted] >= 2; k++ {
			delta := rentStep * ((k + 1) / 2)
			if k%2 == 1 {
				adjusted = rent + delta
			} else {
				adjusted = rent - delta
				if adjusted < rentFloor {
					adjusted = rent + delta
				}
			}
		}
		count[adjusted]++
		out[i] = adjusted
	}

	return out
}

// UniqueSalaryRanges returns a copy of ranges with no exact duplicate
// strings. A duplicate is regenerated by widening its parsed bounds by a
// small percentage jitter and reformatting. Empty or unparseable entries are
// left untouched since there are no bounds to move.
func UniqueSalaryRanges(ranges []string, jit *scoring.Jitter) []string {
	out := make([]string, len(ranges))
	seen := make(map[string]struct{}, len(ranges))

	for i, r := range ranges {
		adjusted := r
		if _, taken := seen[adjusted]; taken && adjusted != "" {
			if lo, hi, ok := scoring.ParseSalaryRange(adjusted); ok {
				for attempt := 0; attempt < 20; attempt++ {
					pct := jit.Percent(5) + attempt
					widened := scoring.FormatSalaryRange(
						lo*(100-pct)/100,
						hi*(100+pct)/100,
					)
					if _, dup := seen[widened]; !dup {
						adjusted = widened
						break
					}
				}
			}
		}
		if adjusted != "" {
			seen[adjusted] = struct{}{}
		}
		out[i] = adjusted
	}

	return out
}
