package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arabdict/conjfixtures/internal/dom"
)

// ArabicClass marks spans holding Arabic script on Wiktionary
const ArabicClass = "Arab"

// ErrNoText is returned when an element and its chain of first children
// never carry any text
var ErrNoText = errors.New("element has no text")

// Text returns the element's own text, or the text of its first child,
// repeated until some element carries text.
func Text(n dom.Node) (string, error) {
	for depth := 0; ; depth++ {
		if text, ok := n.Text(); ok {
			return text, nil
		}
		first, ok := dom.Child(n, 0)
		if !ok {
			return "", fmt.Errorf("<%s> at depth %d: %w", n.Tag(), depth, ErrNoText)
		}
		n = first
	}
}

// ArabicText extracts every Arabic span under cell and formats them as a
// literal: a single quoted string for one span, a bracketed list otherwise.
// A cell without any Arabic span yields "[]".
func ArabicText(cell dom.Node) (string, error) {
	spans := dom.SelectByClass(cell, ArabicClass)

	texts := make([]string, 0, len(spans))
	for i, span := range spans {
		text, err := Text(span)
		if err != nil {
			return "", fmt.Errorf("arabic span %d: %w", i, err)
		}
		texts = append(texts, `"`+text+`"`)
	}

	if len(texts) == 1 {
		return texts[0], nil
	}
	return "[" + strings.Join(texts, ", ") + "]", nil
}
