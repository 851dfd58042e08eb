package catalog

import (
	"strconv"
	"strings"
)

// placeholderPrefix precedes the argument index in a placeholder (value0, value1, ...).
const placeholderPrefix = "value"

// Template is a message with positional placeholders.
type Template string

// Render substitutes args into the template in a single left-to-right pass.
//
// A placeholder is the prefix followed by the longest run of digits. When the
// index has no matching argument the placeholder is kept verbatim. Extra
// arguments are ignored. Substituted text is never rescanned, so an argument
// that itself looks like a placeholder is emitted as is.
func (t Template) Render(args ...string) string {
	s := string(t)

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); {
		end, idx, ok := placeholderAt(s, i)
		if !ok {
			b.WriteByte(s[i])
			i++

			continue
		}

		if idx < len(args) {
			b.WriteString(args[idx])
		} else {
			b.WriteString(s[i:end])
		}

		i = end
	}

	return b.String()
}

// Placeholders returns the number of arguments the template can consume,
// i.e. the highest placeholder index plus one.
func (t Template) Placeholders() int {
	s := string(t)
	count := 0

	for i := 0; i < len(s); {
		end, idx, ok := placeholderAt(s, i)
		if !ok {
			i++

			continue
		}

		count = max(count, idx+1)
		i = end
	}

	return count
}

// placeholderAt reports whether a placeholder starts at s[i], returning the
// index just past it and the parsed argument index.
func placeholderAt(s string, i int) (end, idx int, ok bool) {
	if !strings.HasPrefix(s[i:], placeholderPrefix) {
		return 0, 0, false
	}

	start := i + len(placeholderPrefix)
	end = start

	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == start {
		return 0, 0, false
	}

	idx, err := strconv.Atoi(s[start:end])
	if err != nil {
		// Index overflows int; no argument list can match it.
		return end, int(^uint(0) >> 1), true
	}

	return end, idx, true
}
