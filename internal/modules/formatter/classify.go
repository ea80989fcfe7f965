package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	KindBlank Kind = iota
	KindHeader
	KindSubHeader
	KindBullet
	KindNumbered
	KindPlain
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeader:
		return "header"
	case KindSubHeader:
		return "subheader"
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	case KindPlain:
		return "plain"
	default:
		return "unknown"
	}
}

const maxHeaderLen = 60

// Line is one classified input line.
// Text is the trimmed line; Icon is set for headers, Label and Value for
// sub-headers, and Text holds the stripped item for bullets.
type Line struct {
	Kind  Kind
	Text  string
	Icon  string
	Label string
	Value string
}

// Classify trims raw and assigns it to the first matching kind in the
// order blank, header, sub-header, bullet, numbered, plain.
func Classify(raw string) Line {
	line := trim(raw)
	length := utf8.RuneCountInString(line)
	switch {
	case line == "":
		return Line{Kind: KindBlank}
	case isHeader(line, length):
		return Line{Kind: KindHeader, Text: line, Icon: IconFor(line)}
	case strings.Contains(line, ":") && !strings.HasSuffix(line, ":"):
		label, value, _ := strings.Cut(line, ":")
		return Line{Kind: KindSubHeader, Text: line, Label: label, Value: value}
	case isBullet(line):
		_, size := utf8.DecodeRuneInString(line)
		return Line{Kind: KindBullet, Text: trim(line[size:])}
	case isNumbered(line, length):
		return Line{Kind: KindNumbered, Text: line}
	default:
		return Line{Kind: KindPlain, Text: line}
	}
}

func isHeader(line string, length int) bool {
	if length >= maxHeaderLen {
		return false
	}
	if isUpper(line) {
		return true
	}
	return strings.HasSuffix(line, ":") && strings.Count(line, ":") == 1
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

func isNumbered(line string, length int) bool {
	if length <= 2 {
		return false
	}
	first, size := utf8.DecodeRuneInString(line)
	if first < '0' || first > '9' {
		return false
	}
	second, _ := utf8.DecodeRuneInString(line[size:])
	return second == '.' || second == ')' || second == ':'
}

// isUpper reports whether s has at least one cased rune and none of its
// cased runes are lowercase or titlecase.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.Is(unicode.Other_Lowercase, r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r), unicode.Is(unicode.Other_Uppercase, r):
			cased = true
		}
	}
	return cased
}

// trim strips Unicode whitespace plus the separators U+001C..U+001F.
func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
