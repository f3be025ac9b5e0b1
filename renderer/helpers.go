package renderer

import (
	"bytes"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/etnz/registration"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// counts are integers with a thousand separator.
var counts = money.NewFormatter(0, ".", ",", "", "1")

// Count formats a number of vehicles like "1,234,567".
func Count(n int64) string { return counts.Format(n) }

// SignedCount formats a change in number of vehicles, always with its sign.
func SignedCount(n int64) string {
	if n >= 0 {
		return "+" + Count(n)
	}
	return Count(n)
}

// label returns the text of a dimension label, "All" when there is no dimension.
func label(dim registration.Dimension, l string) string {
	if dim == registration.None {
		return "All"
	}
	return l
}
