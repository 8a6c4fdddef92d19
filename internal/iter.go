package internal

import (
	"iter"
)

// isSpace reports ASCII whitespace only; other Unicode spaces are word characters.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Words returns an iterator over the ASCII-whitespace separated words of line.
// Runs of whitespace collapse, and leading or trailing whitespace is ignored.
func Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for n := 0; n < len(line); n++ {
			if isSpace(line[n]) {
				if start >= 0 {
					if !yield(line[start:n]) {
						return // Stop if the consumer stops
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = n
			}
		}
		if start >= 0 {
			yield(line[start:])
		}
	}
}
