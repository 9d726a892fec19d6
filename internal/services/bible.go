package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/bibleapi"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// bibleCachePrefix namespaces locally cached chapters. Cached chapters are
// device-local and never mirrored to the cloud document.
const bibleCachePrefix = "gracegather_bible_cache_"

// BibleService is the scripture reader: a canon index plus chapter loading
// with an offline-first cache in front of the public text provider.
type BibleService interface {
	Books() []models.BibleBook
	Chapter(ctx context.Context, book string, chapter int) (*models.BibleChapter, error)
	ClearCache(ctx context.Context) error
}

type bibleService struct {
	gw     *gateway.Gateway
	client bibleapi.Client
}

func NewBibleService(gw *gateway.Gateway, client bibleapi.Client) BibleService {
	return &bibleService{gw: gw, client: client}
}

// bibleBooks is the protestant canon the reader navigates, in order.
var bibleBooks = []models.BibleBook{
	{Name: "Genesis", Chapters: 50, Testament: models.TestamentOld},
	{Name: "Exodus", Chapters: 40, Testament: models.TestamentOld},
	{Name: "Leviticus", Chapters: 27, Testament: models.TestamentOld},
	{Name: "Numbers", Chapters: 36, Testament: models.TestamentOld},
	{Name: "Deuteronomy", Chapters: 34, Testament: models.TestamentOld},
	{Name: "Joshua", Chapters: 24, Testament: models.TestamentOld},
	{Name: "Judges", Chapters: 21, Testament: models.TestamentOld},
	{Name: "Ruth", Chapters: 4, Testament: models.TestamentOld},
	{Name: "1 Samuel", Chapters: 31, Testament: models.TestamentOld},
	{Name: "2 Samuel", Chapters: 24, Testament: models.TestamentOld},
	{Name: "1 Kings", Chapters: 22, Testament: models.TestamentOld},
	{Name: "2 Kings", Chapters: 25, Testament: models.TestamentOld},
	{Name: "1 Chronicles", Chapters: 29, Testament: models.TestamentOld},
	{Name: "2 Chronicles", Chapters: 36, Testament: models.TestamentOld},
	{Name: "Ezra", Chapters: 10, Testament: models.TestamentOld},
	{Name: "Nehemiah", Chapters: 13, Testament: models.TestamentOld},
	{Name: "Esther", Chapters: 10, Testament: models.TestamentOld},
	{Name: "Job", Chapters: 42, Testament: models.TestamentOld},
	{Name: "Psalms", Chapters: 150, Testament: models.TestamentOld},
	{Name: "Proverbs", Chapters: 31, Testament: models.TestamentOld},
	{Name: "Ecclesiastes", Chapters: 12, Testament: models.TestamentOld},
	{Name: "Song of Solomon", Chapters: 8, Testament: models.TestamentOld},
	{Name: "Isaiah", Chapters: 66, Testament: models.TestamentOld},
	{Name: "Jeremiah", Chapters: 52, Testament: models.TestamentOld},
	{Name: "Lamentations", Chapters: 5, Testament: models.TestamentOld},
	{Name: "Ezekiel", Chapters: 48, Testament: models.TestamentOld},
	{Name: "Daniel", Chapters: 12, Testament: models.TestamentOld},
	{Name: "Hosea", Chapters: 14, Testament: models.TestamentOld},
	{Name: "Joel", Chapters: 3, Testament: models.TestamentOld},
	{Name: "Amos", Chapters: 9, Testament: models.TestamentOld},
	{Name: "Obadiah", Chapters: 1, Testament: models.TestamentOld},
	{Name: "Jonah", Chapters: 4, Testament: models.TestamentOld},
	{Name: "Micah", Chapters: 7, Testament: models.TestamentOld},
	{Name: "Nahum", Chapters: 3, Testament: models.TestamentOld},
	{Name: "Habakkuk", Chapters: 3, Testament: models.TestamentOld},
	{Name: "Zephaniah", Chapters: 3, Testament: models.TestamentOld},
	{Name: "Haggai", Chapters: 2, Testament: models.TestamentOld},
	{Name: "Zechariah", Chapters: 14, Testament: models.TestamentOld},
	{Name: "Malachi", Chapters: 4, Testament: models.TestamentOld},
	{Name: "Matthew", Chapters: 28, Testament: models.TestamentNew},
	{Name: "Mark", Chapters: 16, Testament: models.TestamentNew},
	{Name: "Luke", Chapters: 24, Testament: models.TestamentNew},
	{Name: "John", Chapters: 21, Testament: models.TestamentNew},
	{Name: "Acts", Chapters: 28, Testament: models.TestamentNew},
	{Name: "Romans", Chapters: 16, Testament: models.TestamentNew},
	{Name: "1 Corinthians", Chapters: 16, Testament: models.TestamentNew},
	{Name: "2 Corinthians", Chapters: 13, Testament: models.TestamentNew},
	{Name: "Galatians", Chapters: 6, Testament: models.TestamentNew},
	{Name: "Ephesians", Chapters: 6, Testament: models.TestamentNew},
	{Name: "Philippians", Chapters: 4, Testament: models.TestamentNew},
	{Name: "Colossians", Chapters: 4, Testament: models.TestamentNew},
	{Name: "1 Thessalonians", Chapters: 5, Testament: models.TestamentNew},
	{Name: "2 Thessalonians", Chapters: 3, Testament: models.TestamentNew},
	{Name: "1 Timothy", Chapters: 6, Testament: models.TestamentNew},
	{Name: "2 Timothy", Chapters: 4, Testament: models.TestamentNew},
	{Name: "Titus", Chapters: 3, Testament: models.TestamentNew},
	{Name: "Philemon", Chapters: 1, Testament: models.TestamentNew},
	{Name: "Hebrews", Chapters: 13, Testament: models.TestamentNew},
	{Name: "James", Chapters: 5, Testament: models.TestamentNew},
	{Name: "1 Peter", Chapters: 5, Testament: models.TestamentNew},
	{Name: "2 Peter", Chapters: 3, Testament: models.TestamentNew},
	{Name: "1 John", Chapters: 5, Testament: models.TestamentNew},
	{Name: "2 John", Chapters: 1, Testament: models.TestamentNew},
	{Name: "3 John", Chapters: 1, Testament: models.TestamentNew},
	{Name: "Jude", Chapters: 1, Testament: models.TestamentNew},
	{Name: "Revelation", Chapters: 22, Testament: models.TestamentNew},
}

func (s *bibleService) Books() []models.BibleBook {
	out := make([]models.BibleBook, len(bibleBooks))
	copy(out, bibleBooks)
	return out
}

// findBook matches a book name case-insensitively.
func findBook(name string) *models.BibleBook {
	for i := range bibleBooks {
		if strings.EqualFold(bibleBooks[i].Name, name) {
			return &bibleBooks[i]
		}
	}
	return nil
}

func cacheKey(translation, book string, chapter int) string {
	key := fmt.Sprintf("%s%s_%s_%d", bibleCachePrefix, translation, book, chapter)
	return strings.ToLower(strings.ReplaceAll(key, " ", ""))
}

// Chapter loads a chapter, serving from the local cache when possible and
// caching fetched chapters for offline reading.
func (s *bibleService) Chapter(ctx context.Context, book string, chapter int) (*models.BibleChapter, error) {
	b := findBook(book)
	if b == nil {
		return nil, fmt.Errorf("%w: unknown book %q", common.ErrorNotFound, book)
	}
	if chapter < 1 || chapter > b.Chapters {
		return nil, fmt.Errorf("%w: %s has %d chapters", common.ErrorNotFound, b.Name, b.Chapters)
	}

	key := cacheKey(bibleapi.DefaultTranslation, b.Name, chapter)
	var cached models.BibleChapter
	if s.gw.LoadLocal(ctx, key, &cached) {
		return &cached, nil
	}

	fetched, err := s.client.Chapter(ctx, b.Name, chapter, bibleapi.DefaultTranslation)
	if err != nil {
		return nil, err
	}

	// A full cache is not worth failing the read over.
	_ = s.gw.SaveLocal(ctx, key, fetched)
	return fetched, nil
}

// ClearCache drops every cached chapter.
func (s *bibleService) ClearCache(ctx context.Context) error {
	return s.gw.ClearLocalPrefix(ctx, bibleCachePrefix)
}
