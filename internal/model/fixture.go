package model

// Voice is the grammatical voice of a verb form
type Voice string

const (
	VoiceActive  Voice = "active"
	VoicePassive Voice = "passive"
)

// Tense as it is named in the row-groups of the source table
type Tense string

const (
	TensePast        Tense = "past"
	TenseIndicative  Tense = "indicative"
	TenseSubjunctive Tense = "subjunctive"
	TenseJussive     Tense = "jussive"

	// Output-only tenses
	TensePerfect Tense = "perfect"
	TensePresent Tense = "present"
)

// Mood of a verb form
type Mood string

const (
	MoodIndicative Mood = "indicative"
	MoodImperative Mood = "imperative"
)

// Person of a verb form
type Person string

const (
	PersonFirst  Person = "first"
	PersonSecond Person = "second"
	PersonThird  Person = "third"
)

// Gender of a verb form
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Numerus is grammatical number
type Numerus string

const (
	NumerusSingular Numerus = "singular"
	NumerusDual     Numerus = "dual"
	NumerusPlural   Numerus = "plural"
)

// Fixture is one expected conjugation result.
// Expected is already a source literal: either "text" or ["a", "b"].
type Fixture struct {
	Voice    Voice
	Tense    Tense
	Mood     Mood
	Person   Person
	Gender   Gender
	Numerus  Numerus
	Expected string
}

// TenseAndMood maps a table tense onto the tense/mood pair written to a
// fixture. The past becomes the indicative perfect; any other tense names
// its own mood. With presentTense set, non-past forms are written as the
// present tense in that mood instead.
func TenseAndMood(tense Tense, presentTense bool) (Tense, Mood) {
	if tense == TensePast {
		return TensePerfect, MoodIndicative
	}
	if presentTense {
		return TensePresent, Mood(tense)
	}
	return tense, Mood(tense)
}
