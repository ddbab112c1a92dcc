package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/levelup-fitness/internal/app"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
)

func (h *Handler) addWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var entry models.WorkoutLogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// The owner comes from the verified token, never from the body.
	entry.UserID = userID

	stored, err := h.services.WorkoutLogService.AddWorkoutLog(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid workout log data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during workout log creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("user_id", userID).Int64("id", stored.ID).Str("exercise", stored.Exercise).Msg("workout log entry added")

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) listWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	// date is optional; empty means the full history.
	date := r.URL.Query().Get("date")

	entries, err := h.services.WorkoutLogService.ListWorkoutLogs(ctx, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("date", date).Msg("invalid date query param")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during workout log listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) updateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid workout log entry ID")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var patch models.WorkoutLogPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	stored, err := h.services.WorkoutLogService.UpdateWorkoutLog(ctx, userID, entryID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("id", entryID).Msg("invalid workout log patch provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrWorkoutLogNotFound):
			log.Err(err).Int64("id", entryID).Msg("workout log entry not found")
			http.Error(w, app.MsgWorkoutLogNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during workout log update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("user_id", userID).Int64("id", entryID).Bool("done", stored.Done).Msg("workout log entry updated")

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) deleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid workout log entry ID")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.WorkoutLogService.DeleteWorkoutLog(ctx, userID, entryID); err != nil {
		switch {
		case errors.Is(err, store.ErrWorkoutLogNotFound):
			log.Err(err).Int64("id", entryID).Msg("workout log entry not found")
			http.Error(w, app.MsgWorkoutLogNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during workout log deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("user_id", userID).Int64("id", entryID).Msg("workout log entry deleted")

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) clearAllWorkoutData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	confirmed := r.URL.Query().Get("confirmed") == "true"

	if err := h.services.WorkoutLogService.ClearAllWorkoutData(ctx, userID, confirmed); err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfirmed):
			log.Err(err).Msg("workout data wipe was not confirmed")
			http.Error(w, app.MsgOperationNotConfirmed, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during workout data wipe")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("user_id", userID).Msg("all workout data cleared")

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) workoutSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	// days is optional; the store substitutes its default window for zero.
	var days int
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil {
			log.Err(err).Str("days", daysParam).Msg("invalid days query param")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		days = parsed
	}

	summary, err := h.services.WorkoutLogService.WorkoutSummary(ctx, userID, days)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during workout summary")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
