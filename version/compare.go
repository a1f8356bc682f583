// Package version checks for newer releases.
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

func parse(s string) ([3]int, error) {
	var parsed [3]int

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, _, _ = strings.Cut(s, "-")

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return parsed, fmt.Errorf("version %q is not major.minor.patch", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return parsed, fmt.Errorf("version %q: %w", s, err)
		}
		parsed[i] = n
	}

	return parsed, nil
}

// Compare orders two major.minor.patch versions, with or without a "v" prefix.
// Pre-release suffixes are ignored.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if c := cmp.Compare(av[i], bv[i]); c != 0 {
			return c, nil
		}
	}

	return 0, nil
}
