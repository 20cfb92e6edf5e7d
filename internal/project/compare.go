package project

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions returns 1 if a is newer than b, -1 if older and 0 if equal.
// Versions that are not semantic fall back to a dotted segment comparison
// (e.g. 2024.01.01.1), where a numeric segment compares as a number.
func CompareVersions(a, b string) int {
	a = strings.TrimPrefix(strings.TrimSpace(a), "v")
	b = strings.TrimPrefix(strings.TrimSpace(b), "v")

	if a == b {
		return 0
	}

	sa, errA := semver.NewVersion(a)
	sb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return sa.Compare(sb)
	}

	pa := strings.Split(a, ".")
	pb := strings.Split(b, ".")

	for i := 0; i < len(pa) && i < len(pb); i++ {
		if c := compareSegment(pa[i], pb[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(pa) > len(pb):
		return 1
	case len(pa) < len(pb):
		return -1
	}
	return 0
}

func compareSegment(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	// A pre-release suffix sorts below the plain segment
	h1 := strings.Contains(s1, "-")
	h2 := strings.Contains(s2, "-")
	if h1 != h2 {
		if h1 {
			return -1
		}
		return 1
	}

	if !h1 {
		n1, e1 := strconv.Atoi(s1)
		n2, e2 := strconv.Atoi(s2)
		if e1 == nil && e2 == nil {
			switch {
			case n1 > n2:
				return 1
			case n1 < n2:
				return -1
			}
			return 0
		}
	}

	if s1 > s2 {
		return 1
	}
	return -1
}

// Direction describes a version change in words for log messages.
func Direction(previous, current string) string {
	switch CompareVersions(current, previous) {
	case 1:
		return "upgraded"
	case -1:
		return "downgraded"
	}
	return "unchanged"
}
