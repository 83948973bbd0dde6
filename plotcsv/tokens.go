package plotcsv

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^ \t]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var wordToken = commandLexer.Symbols()["Word"]

// tokenize splits a command line into whitespace separated words. Quotes
// have no special meaning.
func tokenize(line string) ([]string, error) {
	lx, err := commandLexer.LexString("", line)
	if err != nil {
		return nil, err
	}

	var toks []string
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if t.EOF() {
			break
		}
		if t.Type == wordToken {
			toks = append(toks, t.Value)
		}
	}
	return toks, nil
}
