package parser

import "regexp"

// whitespace mirrors the JavaScript \s class, which is wider than RE2's.
const whitespace = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// Unanchored pattern sources. Inner text of emphasis may span lines.
const (
	FenceSource       = "```((?s:.*?))```"
	LinkSource        = `\[([^\]]+)\]\(([^)]+)\)`
	BoldStarSource    = `\*\*((?s:.+?))\*\*`
	BoldUnderSource   = `__((?s:.+?))__`
	ItalicStarSource  = `\*((?s:.+?))\*`
	ItalicUnderSource = `_((?s:.+?))_`
	CodeSource        = "`([^`]+)`"
	StrikeSource      = `~~([^~]+)~~`
	BareURLSource     = `(https?://[^` + whitespace + `<>]+[^<>.,:;"')\]` + whitespace + `])`
)

var (
	fenceRe = regexp.MustCompile(FenceSource)

	// BareURLRe finds bare URLs anywhere in a string.
	BareURLRe = regexp.MustCompile(BareURLSource)
	// WholeURLRe matches only when the whole string is one bare URL.
	WholeURLRe = regexp.MustCompile(`\A` + BareURLSource + `\z`)
	// LinkRe finds [label](url) anywhere in a string.
	LinkRe = regexp.MustCompile(LinkSource)

	// infoRe 是开始围栏同一行上的语言标记，例如 go、c++、objective-c
	infoRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+#.\-]{0,31}$`)
)

// anchored compiles src so it only matches at the start of the input.
func anchored(src string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + src + `)`)
}
