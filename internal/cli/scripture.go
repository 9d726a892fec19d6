package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/bibleapi"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
)

// Books prints the canon, grouped by testament.
func (a *App) Books(ctx context.Context) error {
	testament := ""
	for _, b := range a.bible.Books() {
		if b.Testament != testament {
			testament = b.Testament
			fmt.Printf("%s Testament:\n", testament)
		}
		fmt.Printf("  %s (%d)\n", b.Name, b.Chapters)
	}
	return nil
}

// Read prints a chapter. The last argument is the chapter number; everything
// before it is the book name, so "read 1 Samuel 17" works.
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Println("Usage: read <book> <chapter>")
		return nil
	}
	chapter, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		fmt.Println("Usage: read <book> <chapter>")
		return nil
	}
	book := strings.Join(args[:len(args)-1], " ")

	ch, err := a.bible.Chapter(ctx, book, chapter)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fmt.Println(err.Error())
		case errors.Is(err, bibleapi.ErrUnavailable):
			fmt.Println("Scripture provider unreachable and this chapter is not cached yet.")
		}
		return err
	}

	fmt.Printf("%s %d\n%s\n\n", ch.Book, ch.Chapter, ch.Summary)
	for _, v := range ch.Verses {
		fmt.Printf("%d. %s\n", v.Number, v.Text)
	}
	return nil
}

// Devotional prints today's challenge.
func (a *App) Devotional(ctx context.Context) error {
	d := a.devotional.Today(ctx)
	fmt.Printf("%s\n  \"%s\"\n\n", d.Reference, d.Verse)
	fmt.Printf("Reflect: %s\n", d.ReflectionQuestion)
	fmt.Printf("Act: %s\n", d.ActionItem)
	fmt.Printf("Pray: %s\n", d.PrayerFocus)
	return nil
}
