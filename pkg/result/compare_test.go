package result

import (
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b Result[int, int]
		want int
	}{
		{"ok before err", Ok[int, int](100), Err[int, int](-100), -1},
		{"err after ok", Err[int, int](-100), Ok[int, int](100), 1},
		{"ok payload lt", Ok[int, int](1), Ok[int, int](2), -1},
		{"ok payload eq", Ok[int, int](2), Ok[int, int](2), 0},
		{"err payload gt", Err[int, int](3), Err[int, int](2), 1},
		{"err payload eq", Err[int, int](2), Err[int, int](2), 0},
	}

	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: Compare(%v, %v) = %d, want %d", tc.name, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLess_CrossVariantTieBreak(t *testing.T) {
	t.Parallel()

	// Ok sorts before Err no matter the payloads.
	if !Less(Ok[int, int](1000), Err[int, int](-1000)) {
		t.Fatalf("Ok must sort before Err regardless of payload")
	}
	if Less(Err[int, int](-1000), Ok[int, int](1000)) {
		t.Fatalf("Err must never sort before Ok")
	}
}

func TestCompareFunc(t *testing.T) {
	t.Parallel()

	got := CompareFunc(
		Ok[string, int]("ABC"), Ok[string, int]("abd"),
		func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) },
		func(a, b int) int { return a - b },
	)
	if got != -1 {
		t.Fatalf("case-insensitive ok compare = %d, want -1", got)
	}

	got = CompareFunc(
		Err[string, int](5), Err[string, int](3),
		func(a, b string) int { return strings.Compare(a, b) },
		func(a, b int) int { return a - b },
	)
	if got <= 0 {
		t.Fatalf("err channel comparator result = %d, want positive", got)
	}
}

func TestHash_Consistency(t *testing.T) {
	t.Parallel()

	if Hash(Ok[int, string](2)) != Hash(Ok[int, string](2)) {
		t.Fatalf("equal Ok values must hash equally")
	}
	if Hash(Err[int, string]("e")) != Hash(Err[int, string]("e")) {
		t.Fatalf("equal Err values must hash equally")
	}
	if Hash(Ok[int, int](0)) == Hash(Err[int, int](0)) {
		t.Fatalf("Ok(0) and Err(0) should not share a hash under the variant flag")
	}
}
