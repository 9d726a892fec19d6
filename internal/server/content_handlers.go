package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"
)

// PrayerHandler serves the prayer wall. Reading and posting are public;
// deletion requires a pastoral token.
type PrayerHandler struct {
	Prayers services.PrayerService
}

type addPrayerRequest struct {
	Author      string `json:"author"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"isAnonymous"`
}

func (h *PrayerHandler) List(w http.ResponseWriter, r *http.Request) {
	prayers, err := h.Prayers.Requests(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load prayers")
		return
	}
	writeJSON(w, http.StatusOK, prayers)
}

func (h *PrayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addPrayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content required")
		return
	}
	if req.Author == "" && !req.IsAnonymous {
		writeError(w, http.StatusBadRequest, "author required unless anonymous")
		return
	}

	prayer, err := h.Prayers.AddRequest(r.Context(), req.Author, req.Content, req.IsAnonymous)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save prayer")
		return
	}
	writeJSON(w, http.StatusCreated, prayer)
}

func (h *PrayerHandler) Pray(w http.ResponseWriter, r *http.Request) {
	if err := h.Prayers.IncrementPrayerCount(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update prayer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PrayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Prayers.DeleteRequest(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete prayer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VideoHandler serves the video gallery.
type VideoHandler struct {
	Videos services.VideoService
}

type addVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Videos.Videos(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load videos")
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *VideoHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "title and url required")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())
	video, err := h.Videos.AddVideo(r.Context(), req.Title, req.Description, req.URL, claims.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save video")
		return
	}
	writeJSON(w, http.StatusCreated, video)
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Videos.DeleteVideo(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete video")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ScheduleHandler serves the stream schedule.
type ScheduleHandler struct {
	Schedule services.ScheduleService
}

type addEventRequest struct {
	Title       string    `json:"title"`
	DateTime    time.Time `json:"dateTime"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
}

type setLiveRequest struct {
	IsLive bool `json:"isLive"`
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Schedule.Events(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load schedule")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *ScheduleHandler) Live(w http.ResponseWriter, r *http.Request) {
	event, err := h.Schedule.LiveEvent(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load schedule")
		return
	}
	if event == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *ScheduleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.DateTime.IsZero() {
		writeError(w, http.StatusBadRequest, "title and dateTime required")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())
	event, err := h.Schedule.AddEvent(r.Context(), req.Title, req.DateTime, req.Description, req.Type, claims.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save event")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *ScheduleHandler) SetLive(w http.ResponseWriter, r *http.Request) {
	var req setLiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.Schedule.SetLive(r.Context(), chi.URLParam(r, "id"), req.IsLive); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Schedule.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
