package paradigm

import (
	"fmt"

	"github.com/arabdict/conjfixtures/internal/dom"
	"github.com/arabdict/conjfixtures/internal/model"
	"github.com/rs/zerolog/log"
)

// Generate writes the fixtures of a whole inflection table: the four finite
// tenses of both voices and the active imperative. Rows are addressed purely
// by position, starting at BaseRow of the table's first child.
func (g *Generator) Generate(table dom.Node) error {
	body, ok := dom.Child(table, 0)
	if !ok {
		return fmt.Errorf("<%s> has no children: %w", table.Tag(), ErrLayout)
	}
	rows := body.Children()

	pair := func(offset int) (dom.Node, dom.Node, error) {
		if offset+1 >= len(rows) {
			return nil, nil, fmt.Errorf("rows %d-%d requested, table has %d: %w",
				offset, offset+1, len(rows), ErrLayout)
		}
		return rows[offset], rows[offset+1], nil
	}

	offset := BaseRow
	for _, voice := range Voices {
		for _, tense := range FiniteTenses {
			g.out.Section(fmt.Sprintf("%s %s", voice, tense))

			male, female, err := pair(offset)
			if err != nil {
				return fmt.Errorf("%s %s: %w", voice, tense, err)
			}
			log.Debug().
				Str("voice", string(voice)).
				Str("tense", string(tense)).
				Int("row", offset).
				Msg("traversing finite block")

			if err := g.TraverseFinite(voice, tense, male, female); err != nil {
				return err
			}
			offset += RowsPerBlock
		}

		if voice == model.VoiceActive {
			g.out.Section("imperative")

			male, female, err := pair(offset)
			if err != nil {
				return fmt.Errorf("imperative: %w", err)
			}
			log.Debug().Int("row", offset).Msg("traversing imperative block")

			if err := g.TraverseImperative(male, female); err != nil {
				return err
			}
			offset += RowsPerBlock

			offset += PassiveImperativeRows
		}
	}

	return g.out.Err()
}
