package feature

import "regexp"

// Tokenizer extracts candidate tokens from a run of free text. Implementations
// are composed inside the Extractor so the same pass can pick up both Latin
// tool/language names and CJK terms.
type Tokenizer interface {
	Tokens(s string) []string
}

// LatinTokenizer matches runs of Latin alphanumerics, keeping the +/#/. that
// appear in tool names such as C++, C# and Node.js.
type LatinTokenizer struct{}

var latinRun = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.]*[A-Za-z0-9+#]|[A-Za-z]`)

func (LatinTokenizer) Tokens(s string) []string {
	return latinRun.FindAllString(s, -1)
}

// CJKTokenizer matches runs of at least two CJK ideographs.
type CJKTokenizer struct{}

var cjkRun = regexp.MustCompile(`[\p{Han}]{2,}`)

func (CJKTokenizer) Tokens(s string) []string {
	return cjkRun.FindAllString(s, -1)
}
