package models

// Testaments.
const (
	TestamentOld = "Old"
	TestamentNew = "New"
)

// BibleBook is one entry of the canon structure the reader navigates.
type BibleBook struct {
	Name      string `json:"name"`
	Chapters  int    `json:"chapters"`
	Testament string `json:"testament"`
}

type BibleVerse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// BibleChapter is a fetched chapter, cached locally once read.
type BibleChapter struct {
	Book    string       `json:"book"`
	Chapter int          `json:"chapter"`
	Summary string       `json:"summary"`
	Verses  []BibleVerse `json:"verses"`
}

// DailyChallenge is one curated devotional: a verse plus prompts for
// reflection, action, and prayer.
type DailyChallenge struct {
	Verse              string `json:"verse"`
	Reference          string `json:"reference"`
	ReflectionQuestion string `json:"reflectionQuestion"`
	ActionItem         string `json:"actionItem"`
	PrayerFocus        string `json:"prayerFocus"`
}
