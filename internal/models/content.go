package models

import "time"

// PrayerRequest is a single entry on the prayer wall.
type PrayerRequest struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	PrayerCount int       `json:"prayerCount"`
	IsAnonymous bool      `json:"isAnonymous"`
}

// Event types for scheduled streams.
const (
	EventBroadcast  = "BROADCAST"
	EventBibleStudy = "BIBLE_STUDY"
)

// StreamEvent is a scheduled broadcast or bible study. At most one event is
// live at any time; the schedule service enforces that on SetLive.
type StreamEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DateTime    time.Time `json:"dateTime"`
	Description string    `json:"description"`
	IsLive      bool      `json:"isLive"`
	Type        string    `json:"type"`
	Host        string    `json:"host"`
}

// VideoItem is a shared video, stored as an embed URL only.
type VideoItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PostedBy    string    `json:"postedBy"`
	Date        time.Time `json:"date"`
}
