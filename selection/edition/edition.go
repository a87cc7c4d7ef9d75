// Package edition implements rpm-style edition parsing and comparison.
//
// Edition format: [EPOCH:]VERSION[-RELEASE]
//   - EPOCH: non-negative integer, defaults to 0
//   - VERSION: may not contain '-'
//   - RELEASE: everything after the last '-'
//
// VERSION and RELEASE are compared segment by segment: each is split into
// maximal runs of digits or letters; everything else only separates runs.
// Numeric runs compare numerically and beat alphabetic runs. A '~' sorts
// before everything (even the end of the string), a '^' sorts after the end
// of the string but before any further segment.
package edition

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Edition is a parsed [EPOCH:]VERSION[-RELEASE] triple.
type Edition struct {
	Epoch   uint64
	Version string
	Release string
}

// ParseError represents an edition parsing error.
type ParseError struct {
	Edition string
	Message string
}

func (e *ParseError) Error() string {
	return "bad edition " + e.Edition + ": " + e.Message
}

// Parse parses an edition string.
func Parse(s string) (Edition, error) {
	if s == "" {
		return Edition{}, nil
	}
	var ed Edition
	rest := s
	if head, tail, ok := strings.Cut(rest, ":"); ok {
		epoch, err := strconv.ParseUint(head, 10, 64)
		if err != nil {
			return Edition{}, &ParseError{Edition: s, Message: "epoch is not a number"}
		}
		ed.Epoch = epoch
		rest = tail
	}
	if i := strings.LastIndexByte(rest, '-'); i >= 0 {
		ed.Version, ed.Release = rest[:i], rest[i+1:]
		if ed.Release == "" {
			return Edition{}, &ParseError{Edition: s, Message: "empty release"}
		}
	} else {
		ed.Version = rest
	}
	if ed.Version == "" {
		return Edition{}, &ParseError{Edition: s, Message: "empty version"}
	}
	return ed, nil
}

// MustParse parses s or panics. Use only for constants/tests.
func MustParse(s string) Edition {
	ed, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ed
}

// String returns the canonical form; a zero epoch is omitted.
func (e Edition) String() string {
	var b strings.Builder
	if e.Epoch > 0 {
		b.WriteString(strconv.FormatUint(e.Epoch, 10))
		b.WriteByte(':')
	}
	b.WriteString(e.Version)
	if e.Release != "" {
		b.WriteByte('-')
		b.WriteString(e.Release)
	}
	return b.String()
}

// IsEmpty returns true for the zero Edition.
func (e Edition) IsEmpty() bool {
	return e.Epoch == 0 && e.Version == "" && e.Release == ""
}

// Compare compares two editions.
// Returns -1 if e < o, 0 if equal, 1 if e > o.
//
// Order:
// 1. Epoch numerically
// 2. Version segments
// 3. Release segments
func (e Edition) Compare(o Edition) int {
	if c := cmp.Compare(e.Epoch, o.Epoch); c != 0 {
		return c
	}
	if c := CompareSegments(e.Version, o.Version); c != 0 {
		return c
	}
	return CompareSegments(e.Release, o.Release)
}

// Compare parses and compares two edition strings. Strings that fail to
// parse compare lexicographically.
func Compare(a, b string) int {
	ea, errA := Parse(a)
	eb, errB := Parse(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ea.Compare(eb)
}

// CompareSegments compares two version or release strings segment by segment.
func CompareSegments(a, b string) int {
	if a == b {
		return 0
	}
	for {
		a = trimSeparators(a)
		b = trimSeparators(b)

		// Tilde sorts before everything, including the end.
		aTilde := strings.HasPrefix(a, "~")
		bTilde := strings.HasPrefix(b, "~")
		if aTilde || bTilde {
			if aTilde && bTilde {
				a, b = a[1:], b[1:]
				continue
			}
			if aTilde {
				return -1
			}
			return 1
		}

		// Caret sorts after the end but before any other segment.
		aCaret := strings.HasPrefix(a, "^")
		bCaret := strings.HasPrefix(b, "^")
		if aCaret || bCaret {
			switch {
			case aCaret && bCaret:
				a, b = a[1:], b[1:]
				continue
			case a == "":
				return -1
			case b == "":
				return 1
			case aCaret:
				return -1
			default:
				return 1
			}
		}

		if a == "" || b == "" {
			return cmp.Compare(len(a), len(b))
		}

		segA, restA, numA := nextSegment(a)
		segB, restB, numB := nextSegment(b)

		// Numeric segments are newer than alphabetic ones.
		if numA != numB {
			if numA {
				return 1
			}
			return -1
		}

		var c int
		if numA {
			c = compareNumeric(segA, segB)
		} else {
			c = strings.Compare(segA, segB)
		}
		if c != 0 {
			return c
		}
		a, b = restA, restB
	}
}

// Sort sorts a slice of editions in ascending order.
func Sort(eds []Edition) {
	slices.SortFunc(eds, Edition.Compare)
}

// Max returns the higher of two editions.
func Max(a, b Edition) Edition {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func trimSeparators(s string) string {
	i := 0
	for i < len(s) && !isDigit(s[i]) && !isAlpha(s[i]) && s[i] != '~' && s[i] != '^' {
		i++
	}
	return s[i:]
}

// nextSegment splits the leading run of digits or letters off s.
func nextSegment(s string) (seg, rest string, numeric bool) {
	numeric = isDigit(s[0])
	i := 0
	for i < len(s) && (numeric && isDigit(s[i]) || !numeric && isAlpha(s[i])) {
		i++
	}
	return s[:i], s[i:], numeric
}

func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
