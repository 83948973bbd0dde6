package plotcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		desc string
		line string
		want []string
	}{
		{desc: "empty", line: "", want: nil},
		{desc: "only spaces", line: "  \t ", want: nil},
		{desc: "single word", line: "quit", want: []string{"quit"}},
		{desc: "several words", line: "plot 2 Heatsink", want: []string{"plot", "2", "Heatsink"}},
		{desc: "extra whitespace", line: "  xlabel\tTime  (s) ", want: []string{"xlabel", "Time", "(s)"}},
		{desc: "quotes are not special", line: `gp set title "a b"`, want: []string{"gp", "set", "title", `"a`, `b"`}},
		{desc: "apostrophe", line: "xlabel Driver's temp", want: []string{"xlabel", "Driver's", "temp"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res, err := tokenize(tt.line)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestCmdArgs(t *testing.T) {
	toks, err := tokenize("plot  3  CPU   temp ")
	assert.NoError(t, err)

	args := cmdArgs{args: toks[1:]}
	assert.Equal(t, 3, args.NArgs())
	assert.Equal(t, "3 CPU temp", args.Rest())

	var col int
	assert.NoError(t, args.Bind(&col))
	assert.Equal(t, 3, col)
	assert.Equal(t, "CPU temp", args.Rest())

	var a, b, c string
	assert.Error(t, args.Bind(&a, &b, &c))
}
