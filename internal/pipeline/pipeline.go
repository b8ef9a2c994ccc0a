package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arabdict/conjfixtures/internal/dom"
	"github.com/arabdict/conjfixtures/internal/fixture"
	"github.com/arabdict/conjfixtures/internal/model"
	"github.com/arabdict/conjfixtures/internal/paradigm"
	"github.com/arabdict/conjfixtures/internal/util"
	"github.com/rs/zerolog/log"
)

// InflectionTableClass marks conjugation and declension tables on Wiktionary
const InflectionTableClass = "inflection-table"

// ErrTableIndex is returned when the page has fewer inflection tables than
// the requested index needs
var ErrTableIndex = errors.New("no inflection table at index")

// Pipeline runs fetch, parse, table selection and fixture generation
type Pipeline struct {
	fetcher *Fetcher
	config  *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	limiter := util.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	return &Pipeline{
		fetcher: NewFetcher(cfg.HTTP, limiter),
		config:  cfg,
	}
}

// Run fetches url and writes the fixtures of its tableIndex-th inflection
// table to w
func (p *Pipeline) Run(ctx context.Context, url string, tableIndex int, w io.Writer) error {
	fetchResult, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	return p.Render(fetchResult.HTML, url, tableIndex, w)
}

// Render writes the fixtures of the tableIndex-th inflection table in
// htmlContent to w. sourceURL is only used for the source comment.
func (p *Pipeline) Render(htmlContent string, sourceURL string, tableIndex int, w io.Writer) error {
	doc, err := dom.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return err
	}

	table, err := SelectTable(doc, tableIndex)
	if err != nil {
		return err
	}

	out := fixture.NewWriter(w)
	if p.config.Output.SourceComment {
		out.Source(sourceURL)
	}

	gen := paradigm.NewGenerator(out, paradigm.Options{
		PresentTense: p.config.Output.PresentTense,
	})
	if err := gen.Generate(table); err != nil {
		return fmt.Errorf("table %d: %w", tableIndex, err)
	}
	return nil
}

// SelectTable returns the inflection table at index among all of them in
// document order
func SelectTable(doc dom.Node, index int) (dom.Node, error) {
	tables := dom.SelectByClass(doc, InflectionTableClass)
	log.Debug().Int("tables", len(tables)).Int("index", index).Msg("located inflection tables")

	if index < 0 || index >= len(tables) {
		return nil, fmt.Errorf("%w %d (page has %d)", ErrTableIndex, index, len(tables))
	}
	return tables[index], nil
}
