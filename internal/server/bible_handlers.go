package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/bibleapi"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"
)

// BibleHandler serves the scripture reader and the daily devotional. All
// reads are public; clearing the chapter cache requires a pastoral token.
type BibleHandler struct {
	Bible      services.BibleService
	Devotional services.DevotionalService
}

func (h *BibleHandler) Books(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Bible.Books())
}

func (h *BibleHandler) Chapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "chapter must be a number")
		return
	}

	ch, err := h.Bible.Chapter(r.Context(), chi.URLParam(r, "book"), chapter)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, bibleapi.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "scripture provider unavailable")
		default:
			writeError(w, http.StatusInternalServerError, "failed to load chapter")
		}
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *BibleHandler) Daily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Devotional.Today(r.Context()))
}

func (h *BibleHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.Bible.ClearCache(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cache")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
