package services

import (
	"context"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// DevotionalService serves the daily challenge: a curated verse with
// reflection, action and prayer prompts. The rotation is keyed to the
// calendar day so everyone in the community sees the same challenge.
type DevotionalService interface {
	Today(ctx context.Context) models.DailyChallenge
}

type devotionalService struct{}

func NewDevotionalService() DevotionalService {
	return &devotionalService{}
}

var dailyChallenges = []models.DailyChallenge{
	{
		Verse:              "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, plans to give you hope and a future.",
		Reference:          "Jeremiah 29:11",
		ReflectionQuestion: "How does trusting in God's future plan change how you view your current struggles?",
		ActionItem:         "Write down three things you are hopeful for and thank God for them.",
		PrayerFocus:        "Trust in times of uncertainty.",
	},
	{
		Verse:              "But the fruit of the Spirit is love, joy, peace, forbearance, kindness, goodness, faithfulness, gentleness and self-control.",
		Reference:          "Galatians 5:22-23",
		ReflectionQuestion: "Which fruit of the Spirit do you find most difficult to practice today?",
		ActionItem:         "Choose one fruit to focus on and practice it intentionally with everyone you meet today.",
		PrayerFocus:        "Growth in spiritual character.",
	},
	{
		Verse:              "Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go.",
		Reference:          "Joshua 1:9",
		ReflectionQuestion: "Where in your life do you need to step out in faith despite fear?",
		ActionItem:         "Identify one fear holding you back and pray a specific prayer of surrender regarding it.",
		PrayerFocus:        "Courage to follow God's lead.",
	},
}

// Today picks the challenge for the current calendar day (UTC).
func (s *devotionalService) Today(ctx context.Context) models.DailyChallenge {
	return dailyChallenges[nowFn().UTC().YearDay()%len(dailyChallenges)]
}
