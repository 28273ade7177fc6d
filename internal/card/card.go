package card

import "strings"

// Default tokens used by deck lists exported from the common deck builders.
const (
	DefaultSeparator = "//"
	DefaultSplit     = " // "
)

// Card represents one physical copy named in a deck list
type Card struct {
	Name  string // Canonical name, annotation and commas stripped
	Faces int    // 1 for single-faced, 2 for double-faced
}

// New classifies a canonical name using the given face separator
func New(name, separator string) Card {
	if IsDoubleFaced(name, separator) {
		return Card{Name: name, Faces: 2}
	}
	return Card{Name: name, Faces: 1}
}

// CanonicalName strips the set annotation and commas from the text that
// follows the quantity on a deck-list line.
//
// "Fable of the Mirror-Breaker // Reflection of Kiki-Jiki (NEO) 141" becomes
// "Fable of the Mirror-Breaker // Reflection of Kiki-Jiki".
func CanonicalName(rest string) string {
	if i := strings.Index(rest, " ("); i >= 0 {
		rest = rest[:i]
	}
	return strings.ReplaceAll(rest, ",", "")
}

// IsDoubleFaced reports whether name carries the face separator
func IsDoubleFaced(name, separator string) bool {
	if separator == "" {
		separator = DefaultSeparator
	}
	return strings.Contains(name, separator)
}

// Split returns the front and back face names of a double-faced card.
// The spaced split token is tried first; names written without the
// surrounding spaces fall back to the bare separator with both halves trimmed.
// Single-faced names come back with an empty back.
func Split(name, split, separator string) (front, back string) {
	if split == "" {
		split = DefaultSplit
	}
	if separator == "" {
		separator = DefaultSeparator
	}

	if f, b, ok := strings.Cut(name, split); ok {
		return f, b
	}
	if f, b, ok := strings.Cut(name, separator); ok {
		return strings.TrimSpace(f), strings.TrimSpace(b)
	}
	return name, ""
}
