package esv

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// sniffLines is how many lines of the sample DetectSeparator looks at.
const sniffLines = 10

// DetectSeparator guesses the separator of an ESV sample.
//
// Candidates are non-ASCII scalar values that are not letters, digits,
// marks, spaces or format characters (so emoji, but not the variation
// selectors and joiners that accompany them). A candidate qualifies when it
// occurs the same non-zero number of times, outside quotes, on every line of
// the sample's first lines. The most frequent qualifier wins, with
// DefaultSeparator preferred on ties. DefaultSeparator is returned when
// nothing qualifies.
//
//	sep := esv.DetectSeparator("a😀b😀c\nd😀e😀f")
//	// sep == '😀'
func DetectSeparator(sample string) rune {
	lines := countPerLine(sample)
	if len(lines) == 0 {
		return DefaultSeparator
	}

	scores := make(map[rune]int)
	for r, n := range lines[0] {
		consistent := true
		for _, line := range lines[1:] {
			if line[r] != n {
				consistent = false
				break
			}
		}
		if consistent {
			scores[r] = n
		}
	}
	if len(scores) == 0 {
		return DefaultSeparator
	}

	candidates := make([]rune, 0, len(scores))
	for r := range scores {
		candidates = append(candidates, r)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		if a == DefaultSeparator || b == DefaultSeparator {
			return a == DefaultSeparator
		}
		return a < b
	})
	return candidates[0]
}

// countPerLine counts candidate runes outside quotes on each non-empty line
// of the sample, up to sniffLines lines. Line breaks inside quotes do not
// end a line.
func countPerLine(sample string) []map[rune]int {
	var (
		lines    []map[rune]int
		current  = make(map[rune]int)
		nonEmpty bool
		inQuotes bool
	)
	flush := func() {
		if nonEmpty {
			lines = append(lines, current)
		}
		current = make(map[rune]int)
		nonEmpty = false
	}

	for _, r := range sample {
		if len(lines) == sniffLines {
			return lines
		}
		switch {
		case r == '"':
			inQuotes = !inQuotes
			nonEmpty = true
		case !inQuotes && (r == '\n' || r == '\r'):
			flush()
		default:
			nonEmpty = true
			if !inQuotes && isSeparatorCandidate(r) {
				current[r]++
			}
		}
	}
	if len(lines) < sniffLines {
		flush()
	}
	return lines
}

func isSeparatorCandidate(r rune) bool {
	if r < utf8.RuneSelf || r == utf8.RuneError || !validSeparator(r) {
		return false
	}
	return !unicode.IsLetter(r) &&
		!unicode.IsDigit(r) &&
		!unicode.IsMark(r) &&
		!unicode.IsSpace(r) &&
		!unicode.Is(unicode.Cf, r)
}
