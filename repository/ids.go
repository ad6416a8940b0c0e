package repository

import (
	"strconv"
	"strings"
)

// ParseID reads a numeric identifier from a URL path leniently: leading
// whitespace is skipped and the longest signed run of digits is used, so
// "12abc" is 12. Anything without a leading number, or out of range, becomes
// 0. No row has id 0, so malformed ids end up as not found.
func ParseID(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
