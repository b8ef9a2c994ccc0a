package paradigm

import "github.com/arabdict/conjfixtures/internal/model"

// Slot ties one verb form to the cell that holds it. Cell is the position
// of the cell inside the male or female row of a row-group pair.
type Slot struct {
	Gender  model.Gender
	Cell    int
	Person  model.Person
	Numerus model.Numerus
}

// FiniteOrder is the layout of a past/indicative/subjunctive/jussive
// row pair on Wiktionary's Arabic conjugation template. The male row
// starts with two header cells and the female row with one, and the
// female row has no first person or second person dual cells.
var FiniteOrder = []Slot{
	{model.GenderMale, 4, model.PersonThird, model.NumerusSingular},
	{model.GenderFemale, 2, model.PersonThird, model.NumerusSingular},
	{model.GenderMale, 3, model.PersonSecond, model.NumerusSingular},
	{model.GenderFemale, 1, model.PersonSecond, model.NumerusSingular},
	{model.GenderMale, 2, model.PersonFirst, model.NumerusSingular},

	{model.GenderMale, 6, model.PersonThird, model.NumerusDual},
	{model.GenderFemale, 3, model.PersonThird, model.NumerusDual},
	{model.GenderMale, 5, model.PersonSecond, model.NumerusDual},

	{model.GenderMale, 9, model.PersonThird, model.NumerusPlural},
	{model.GenderFemale, 5, model.PersonThird, model.NumerusPlural},
	{model.GenderMale, 8, model.PersonSecond, model.NumerusPlural},
	{model.GenderFemale, 4, model.PersonSecond, model.NumerusPlural},
	{model.GenderMale, 7, model.PersonFirst, model.NumerusPlural},
}

// ImperativeOrder is the layout of the imperative row pair. Only second
// person cells exist, and the dual has no separate female form.
var ImperativeOrder = []Slot{
	{model.GenderMale, 3, model.PersonSecond, model.NumerusSingular},
	{model.GenderFemale, 1, model.PersonSecond, model.NumerusSingular},

	{model.GenderMale, 5, model.PersonSecond, model.NumerusDual},

	{model.GenderMale, 8, model.PersonSecond, model.NumerusPlural},
	{model.GenderFemale, 2, model.PersonSecond, model.NumerusPlural},
}

// Row-group layout of the inflection table body
const (
	// BaseRow is the first row of the active past block; the rows before it
	// hold the verbal noun, participles and column headers.
	BaseRow = 6

	// RowsPerBlock is one male row plus one female row
	RowsPerBlock = 2

	// PassiveImperativeRows follow the active imperative and are skipped
	PassiveImperativeRows = 3
)

// Voices and FiniteTenses in the order they appear in the table
var (
	Voices       = []model.Voice{model.VoiceActive, model.VoicePassive}
	FiniteTenses = []model.Tense{model.TensePast, model.TenseIndicative, model.TenseSubjunctive, model.TenseJussive}
)
