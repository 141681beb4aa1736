// Copyright 2026 The TripDesk Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tripdesk/tripdesk/internal/trip"
)

// CreateTripRequest represents trip catalogue data
type CreateTripRequest struct {
	Name        string `json:"name" validate:"required" example:"Chapada Diamantina 5 dias"`
	Description string `json:"description"`
	Destination string `json:"destination" example:"Lençóis, BA"`
	Published   bool   `json:"published"`
}

// UpdateTripRequest represents a partial trip update; absent fields keep
// their current value.
type UpdateTripRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Destination *string `json:"destination"`
	Published   *bool   `json:"published"`
}

// CreateTrip catalogues a new trip under an agency
// @Summary Create Trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param request body CreateTripRequest true "Trip Data"
// @Success 201 {object} trip.Trip
// @Failure 400 {object} map[string]string
// @Router /agencies/{agencyID}/trips [post]
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, _ := GetPrincipal(r.Context())
	t, err := h.tripService.Create(r.Context(), chi.URLParam(r, "agencyID"), trip.NewTrip{
		Name:        req.Name,
		Description: req.Description,
		Destination: req.Destination,
		Published:   req.Published,
	}, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, t)
}

// ListTrips lists the trips of an agency
// @Summary List Trips
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Success 200 {array} trip.Trip
// @Router /agencies/{agencyID}/trips [get]
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripService.ListByAgency(r.Context(), chi.URLParam(r, "agencyID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if trips == nil {
		trips = []*trip.Trip{}
	}

	respondJSON(w, http.StatusOK, trips)
}

// GetTrip retrieves a trip
// @Summary Get Trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Success 200 {object} trip.Trip
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID} [get]
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	// Ownership middleware already verified and loaded the trip.
	respondJSON(w, http.StatusOK, GetTrip(r.Context()))
}

// UpdateTrip updates trip information
// @Summary Update Trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param request body UpdateTripRequest true "Fields to update"
// @Success 200 {object} trip.Trip
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID} [put]
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req UpdateTripRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, _ := GetPrincipal(r.Context())
	t, err := h.tripService.Update(r.Context(), chi.URLParam(r, "agencyID"), chi.URLParam(r, "tripID"), trip.UpdateTrip{
		Name:        req.Name,
		Description: req.Description,
		Destination: req.Destination,
		Published:   req.Published,
	}, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// DeleteTrip removes a trip
// @Summary Delete Trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID} [delete]
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())
	if err := h.tripService.Delete(r.Context(), chi.URLParam(r, "agencyID"), chi.URLParam(r, "tripID"), p.UserID); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "trip deleted",
	})
}
