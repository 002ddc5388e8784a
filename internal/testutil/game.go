package testutil

import (
	"sort"
	"strings"
	"testing"
)

// SplitMoves splits a whitespace-separated move list such as "e2e4 e7e5".
// Returns an empty slice for blank input.
func SplitMoves(line string) []string {
	fields := strings.Fields(line)
	if fields == nil {
		return []string{}
	}
	return fields
}

// MustSplitMoves splits a move list and calls t.Fatal if it holds no moves.
// Use this in test setup where an empty game should abort the test.
func MustSplitMoves(t *testing.T, line string) []string {
	t.Helper()
	moves := SplitMoves(line)
	if len(moves) == 0 {
		t.Fatalf("no moves in %q", line)
	}
	return moves
}

// SortedStrings returns a sorted copy of s, so that move lists produced in
// generation order can be compared with AssertEqual.
func SortedStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
