package fixture

import (
	"fmt"
	"io"

	"github.com/arabdict/conjfixtures/internal/model"
)

// Writer renders fixtures as object literals ready to paste into a test file.
// The first write error is kept and every later call becomes a no-op.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a new Writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (fw *Writer) printf(format string, a ...interface{}) {
	if fw.err != nil {
		return
	}
	_, fw.err = fmt.Fprintf(fw.w, format, a...)
}

// Source writes the comment naming the page the fixtures came from
func (fw *Writer) Source(url string) {
	fw.printf("//Source: %s\n", url)
}

// Section writes a blank line followed by a "//<title>" comment
func (fw *Writer) Section(title string) {
	fw.printf("\n//%s\n", title)
}

// Blank writes an empty line
func (fw *Writer) Blank() {
	fw.printf("\n")
}

// Fixture writes one record line
func (fw *Writer) Fixture(f model.Fixture) {
	fw.printf("%s\n", Line(f))
}

// Err returns the first error hit while writing
func (fw *Writer) Err() error {
	return fw.err
}

// Line formats a fixture as a single object literal followed by a comma
func Line(f model.Fixture) string {
	return fmt.Sprintf(`{ voice: "%s", expected: %s, gender: "%s", person: "%s", numerus: "%s", tense: "%s", mood: "%s" },`,
		f.Voice, f.Expected, f.Gender, f.Person, f.Numerus, f.Tense, f.Mood)
}
