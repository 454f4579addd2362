package helpers

import (
	"context"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// UniqueStrings drops duplicates preserving first-seen order.
func UniqueStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	result := make([]string, 0, len(list))
	for _, item := range list {
		if seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result
}

// FirstToken returns the first whitespace-separated token of s, or def when
// s is blank.
func FirstToken(s, def string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return def
	}
	return fields[0]
}
