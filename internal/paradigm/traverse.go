package paradigm

import (
	"errors"
	"fmt"

	"github.com/arabdict/conjfixtures/internal/dom"
	"github.com/arabdict/conjfixtures/internal/extract"
	"github.com/arabdict/conjfixtures/internal/fixture"
	"github.com/arabdict/conjfixtures/internal/model"
)

// ErrLayout is returned when the table does not have a row or cell at a
// position the fixed layout expects
var ErrLayout = errors.New("table does not match the conjugation layout")

// Options controls how fixtures are written
type Options struct {
	// PresentTense writes non-past finite forms as tense "present"
	PresentTense bool
}

// Generator walks conjugation tables and writes one fixture per form
type Generator struct {
	out  *fixture.Writer
	opts Options
}

// NewGenerator creates a new Generator writing to out
func NewGenerator(out *fixture.Writer, opts Options) *Generator {
	return &Generator{out: out, opts: opts}
}

// TraverseFinite writes the 13 forms of one voice/tense block. A blank line
// separates the singular, dual and plural groups.
func (g *Generator) TraverseFinite(voice model.Voice, tense model.Tense, male, female dom.Node) error {
	outTense, mood := model.TenseAndMood(tense, g.opts.PresentTense)

	lastPerson := model.PersonThird
	for _, slot := range FiniteOrder {
		expected, err := cellText(slot, male, female)
		if err != nil {
			return fmt.Errorf("%s %s: %w", voice, tense, err)
		}

		if lastPerson != model.PersonThird && slot.Person == model.PersonThird {
			g.out.Blank()
		}

		g.out.Fixture(model.Fixture{
			Voice:    voice,
			Tense:    outTense,
			Mood:     mood,
			Person:   slot.Person,
			Gender:   slot.Gender,
			Numerus:  slot.Numerus,
			Expected: expected,
		})
		lastPerson = slot.Person
	}

	return g.out.Err()
}

// TraverseImperative writes the 5 active imperative forms
func (g *Generator) TraverseImperative(male, female dom.Node) error {
	lastNumerus := model.NumerusSingular
	for _, slot := range ImperativeOrder {
		expected, err := cellText(slot, male, female)
		if err != nil {
			return fmt.Errorf("imperative: %w", err)
		}

		if lastNumerus != slot.Numerus {
			g.out.Blank()
		}

		g.out.Fixture(model.Fixture{
			Voice:    model.VoiceActive,
			Tense:    model.TensePresent,
			Mood:     model.MoodImperative,
			Person:   slot.Person,
			Gender:   slot.Gender,
			Numerus:  slot.Numerus,
			Expected: expected,
		})
		lastNumerus = slot.Numerus
	}

	return g.out.Err()
}

func cellText(slot Slot, male, female dom.Node) (string, error) {
	row := male
	if slot.Gender == model.GenderFemale {
		row = female
	}

	cell, ok := dom.Child(row, slot.Cell)
	if !ok {
		return "", fmt.Errorf("%s %s %s: no cell %d in %s row (%d cells): %w",
			slot.Person, slot.Gender, slot.Numerus, slot.Cell, slot.Gender, len(row.Children()), ErrLayout)
	}

	text, err := extract.ArabicText(cell)
	if err != nil {
		return "", fmt.Errorf("%s %s %s: %w", slot.Person, slot.Gender, slot.Numerus, err)
	}
	return text, nil
}
