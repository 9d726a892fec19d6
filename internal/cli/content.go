package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// eventTimeLayout is what addevent accepts for the start time.
const eventTimeLayout = "2006-01-02 15:04"

// Prayers lists the prayer wall, newest first.
func (a *App) Prayers(ctx context.Context) error {
	prayers, err := a.prayers.Requests(ctx)
	if err != nil {
		return err
	}
	if len(prayers) == 0 {
		fmt.Println("The prayer wall is empty.")
		return nil
	}
	for _, p := range prayers {
		fmt.Printf("[%s] %s (%d prayed)\n  %s\n", p.ID, p.Author, p.PrayerCount, p.Content)
	}
	return nil
}

// AddPrayer posts a new request to the wall.
func (a *App) AddPrayer(ctx context.Context) error {
	author, err := getSimpleText(a.reader, "Your name (leave empty to stay anonymous)", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Your prayer request", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Println("Nothing entered.")
		return nil
	}

	anonymous := author == ""
	p, err := a.prayers.AddRequest(ctx, author, content, anonymous)
	if err != nil {
		return err
	}
	fmt.Printf("Posted as %s.\n", p.Author)
	return nil
}

// Pray records that someone prayed for the given request.
func (a *App) Pray(ctx context.Context, id string) error {
	if err := a.prayers.IncrementPrayerCount(ctx, id); err != nil {
		return err
	}
	fmt.Println("Amen.")
	return nil
}

// DeletePrayer removes a request from the wall.
func (a *App) DeletePrayer(ctx context.Context, id string) error {
	if err := a.prayers.DeleteRequest(ctx, id); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// Videos lists the gallery, newest first.
func (a *App) Videos(ctx context.Context) error {
	videos, err := a.videos.Videos(ctx)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Println("No videos yet.")
		return nil
	}
	for _, v := range videos {
		fmt.Printf("[%s] %s\n  %s (posted by %s on %s)\n", v.ID, v.Title, v.URL, v.PostedBy, v.Date.Format("2006-01-02"))
	}
	return nil
}

// AddVideo adds an entry to the gallery attributed to the logged-in user.
func (a *App) AddVideo(ctx context.Context) error {
	if a.session == nil {
		fmt.Println("Log in first.")
		return nil
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Video URL", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.videos.AddVideo(ctx, title, description, url, a.session.Username); err != nil {
		return err
	}
	fmt.Println("Video added.")
	return nil
}

// DeleteVideo removes an entry from the gallery.
func (a *App) DeleteVideo(ctx context.Context, id string) error {
	if err := a.videos.DeleteVideo(ctx, id); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// Schedule lists upcoming stream events, soonest first.
func (a *App) Schedule(ctx context.Context) error {
	events, err := a.schedule.Events(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("Nothing scheduled.")
		return nil
	}
	for _, e := range events {
		live := ""
		if e.IsLive {
			live = " LIVE"
		}
		fmt.Printf("[%s] %s at %s (%s)%s\n", e.ID, e.Title, e.DateTime.Format(eventTimeLayout), e.Type, live)
	}
	return nil
}

// AddEvent schedules a stream event hosted by the logged-in user.
func (a *App) AddEvent(ctx context.Context) error {
	if a.session == nil {
		fmt.Println("Log in first.")
		return nil
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	when, err := getSimpleText(a.reader, "Starts at (YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	dateTime, err := time.ParseInLocation(eventTimeLayout, when, time.Local)
	if err != nil {
		fmt.Println("Could not parse that time, expected e.g. 2025-12-24 18:00.")
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (broadcast/bible-study, default broadcast)", os.Stdout)
	if err != nil {
		return err
	}
	eventType := ""
	if strings.EqualFold(strings.TrimSpace(kind), "bible-study") {
		eventType = models.EventBibleStudy
	}

	if _, err := a.schedule.AddEvent(ctx, title, dateTime, description, eventType, a.session.Username); err != nil {
		return err
	}
	fmt.Println("Event scheduled.")
	return nil
}

// Live marks one event live, or ends the current broadcast with "off".
func (a *App) Live(ctx context.Context, id string) error {
	if id == "off" {
		current, err := a.schedule.LiveEvent(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			fmt.Println("Nothing is live.")
			return nil
		}
		if err := a.schedule.SetLive(ctx, current.ID, false); err != nil {
			return err
		}
		fmt.Println("Broadcast ended.")
		return nil
	}

	if err := a.schedule.SetLive(ctx, id, true); err != nil {
		return err
	}
	fmt.Println("We are live.")
	return nil
}

// DeleteEvent removes a scheduled event.
func (a *App) DeleteEvent(ctx context.Context, id string) error {
	if err := a.schedule.DeleteEvent(ctx, id); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
