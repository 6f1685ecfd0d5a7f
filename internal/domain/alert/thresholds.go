package alert

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultThresholds is used whenever the configured threshold string cannot
// be parsed. The fallback is silent: a malformed configuration must degrade,
// never abort an alert run.
func DefaultThresholds() []int {
	return []int{15, 30, 60}
}

// ParseThresholds parses a comma-separated list of day counts into a
// deduplicated, ascending slice. Empty input, any non-numeric entry or a
// list with no usable values falls back to DefaultThresholds.
func ParseThresholds(raw string) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return DefaultThresholds()
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return DefaultThresholds()
	}
	sort.Ints(out)
	return out
}
