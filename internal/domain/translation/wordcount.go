package translation

import "strings"

// CountWords returns the number of whitespace-delimited tokens in s. Any
// Unicode space (NBSP, ideographic space, ...) separates tokens, matching
// how source word counts are billed as translator workload.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
