package table

import (
	"strings"
	"testing"

	"github.com/atomicstack/justlist/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"GROUP", "#", "LABEL", "PARAM"},
		{"group 1", "1", "item 1", "xxx"},
		{"group 1", "10", "item 2", "yyy"},
		{"files", "2", "naïve.txt", "/tmp/naïve.txt"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft, AlignLeft})
	testutil.AssertGolden(t, "aligned.txt", strings.Join(out, "\n")+"\n")
}

func TestFormatIgnoresEscapeSequences(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mbold\x1b[0m", "x"},
		{"plain", "y"},
	}
	out := Format(rows, nil)
	assert.Equal(t, "\x1b[1mbold\x1b[0m   x", out[0])
	assert.Equal(t, "plain  y", out[1])
}

func TestFormatRaggedRows(t *testing.T) {
	out := Format([][]string{{"a", "b", "c"}, {"long"}}, nil)
	assert.Equal(t, []string{"a     b  c", "long"}, out)
}

func TestFormatEmpty(t *testing.T) {
	assert.Nil(t, Format(nil, nil))
}
