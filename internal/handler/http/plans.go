// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/levelup-fitness/internal/app"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
)

func (h *Handler) appendPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.AppendPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	plan := models.Plan{
		UserID:  userID,
		Kind:    req.Kind,
		Content: req.Content,
	}

	stored, err := h.services.PlanService.AppendPlan(ctx, plan)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid plan data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during plan upload")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("user_id", userID).Str("kind", string(stored.Kind)).Int64("id", stored.ID).Msg("plan stored")

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	kind := models.PlanKind(r.URL.Query().Get("kind"))

	// limit is optional; the service substitutes its default for zero.
	var limit uint64
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.ParseUint(limitParam, 10, 64)
		if err != nil {
			log.Err(err).Str("limit", limitParam).Msg("invalid limit query param")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	plans, err := h.services.PlanService.ListRecentPlans(ctx, userID, kind, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid plan kind provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during plan listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, plans, http.StatusOK)
}

func (h *Handler) clearPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	kind := models.PlanKind(r.URL.Query().Get("kind"))
	confirmed := r.URL.Query().Get("confirmed") == "true"

	deleted, err := h.services.PlanService.ClearPlans(ctx, userID, kind, confirmed)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfirmed):
			log.Err(err).Msg("plan wipe was not confirmed")
			http.Error(w, app.MsgOperationNotConfirmed, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid plan kind provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during plan wipe")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("user_id", userID).Str("kind", string(kind)).Int64("deleted", deleted).Msg("plans cleared")

	utils.WriteJSON(w, models.ClearPlansResponse{Deleted: deleted}, http.StatusOK)
}
