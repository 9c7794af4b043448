package response

import (
	"errors"
	"fmt"
	"io"
	"unicode"
)

// ErrInvalidFormat is returned when a command line has the wrong number of
// fields.
var ErrInvalidFormat = errors.New("invalid format")

// WriteError prints err on its own line with the first letter capitalized.
func WriteError(w io.Writer, err error) {
	fmt.Fprintln(w, Capitalize(err.Error()))
}

// WriteText prints rendered output followed by a newline.
func WriteText(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
