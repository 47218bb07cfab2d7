package pr

import (
	"strings"
	"unicode"
)

// TitleInfo is the user's title input split into its parts.
type TitleInfo struct {
	Title  string
	Ticket string
}

// ParseTitle interprets free-form title input. "ABC-123: Add login" yields
// both parts. Without a colon, a single token containing a digit is taken as
// a ticket id and anything else as the title.
func ParseTitle(input string) TitleInfo {
	input = strings.TrimSpace(input)
	if input == "" {
		return TitleInfo{}
	}
	if ticket, title, ok := strings.Cut(input, ":"); ok {
		return TitleInfo{Title: strings.TrimSpace(title), Ticket: strings.TrimSpace(ticket)}
	}
	if !strings.ContainsFunc(input, unicode.IsSpace) && strings.ContainsFunc(input, unicode.IsDigit) {
		return TitleInfo{Ticket: input}
	}
	return TitleInfo{Title: input}
}

// FormatTitle renders "type(ticket): title". An empty type and ticket
// leave just the title.
func FormatTitle(prType, title, ticket string) string {
	prefix := prType
	if ticket != "" {
		prefix += "(" + ticket + ")"
	}
	out := prefix + ": " + title
	if rest, ok := strings.CutPrefix(out, ":"); ok {
		out = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}
	return strings.TrimSpace(out)
}

// cleanTitle trims a generated title and drops one quote at either end.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		s = s[:n-1]
	}
	return s
}
