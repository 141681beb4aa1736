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
	"github.com/tripdesk/tripdesk/internal/agency"
)

// AgeRangeRequest represents age range data for create and update
type AgeRangeRequest struct {
	Name         string `json:"name" validate:"required" example:"Children"`
	MinAge       int    `json:"min_age" validate:"min=0" example:"0"`
	MaxAge       int    `json:"max_age" validate:"required" example:"12"`
	OccupiesSeat bool   `json:"occupies_seat" example:"true"`
}

// CreateAgeRange adds an age range to an agency
// @Summary Create Age Range
// @Description Add a named, non-overlapping age interval to the agency
// @Tags AgeRanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param request body AgeRangeRequest true "Age Range Data"
// @Success 201 {object} agency.AgeRange
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /agencies/{agencyID}/age-ranges [post]
func (h *Handler) CreateAgeRange(w http.ResponseWriter, r *http.Request) {
	var req AgeRangeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, _ := GetPrincipal(r.Context())
	ar, err := h.ageRangeService.Create(r.Context(), chi.URLParam(r, "agencyID"), agency.NewAgeRange{
		Name:         req.Name,
		MinAge:       req.MinAge,
		MaxAge:       req.MaxAge,
		OccupiesSeat: req.OccupiesSeat,
	}, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, ar)
}

// ListAgeRanges lists the age ranges of an agency
// @Summary List Age Ranges
// @Tags AgeRanges
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Success 200 {array} agency.AgeRange
// @Router /agencies/{agencyID}/age-ranges [get]
func (h *Handler) ListAgeRanges(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.ageRangeService.List(r.Context(), chi.URLParam(r, "agencyID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if ranges == nil {
		ranges = []*agency.AgeRange{}
	}

	respondJSON(w, http.StatusOK, ranges)
}

// GetAgeRange retrieves an age range
// @Summary Get Age Range
// @Tags AgeRanges
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param rangeID path string true "Age Range ID"
// @Success 200 {object} agency.AgeRange
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/age-ranges/{rangeID} [get]
func (h *Handler) GetAgeRange(w http.ResponseWriter, r *http.Request) {
	ar, err := h.ageRangeService.Get(r.Context(), chi.URLParam(r, "agencyID"), chi.URLParam(r, "rangeID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ar)
}

// UpdateAgeRange updates an age range
// @Summary Update Age Range
// @Description Update an age range; the new interval is validated against all other ranges of the agency
// @Tags AgeRanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param rangeID path string true "Age Range ID"
// @Param request body AgeRangeRequest true "Age Range Data"
// @Success 200 {object} agency.AgeRange
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /agencies/{agencyID}/age-ranges/{rangeID} [put]
func (h *Handler) UpdateAgeRange(w http.ResponseWriter, r *http.Request) {
	var req AgeRangeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, _ := GetPrincipal(r.Context())
	ar, err := h.ageRangeService.Update(r.Context(), chi.URLParam(r, "agencyID"), chi.URLParam(r, "rangeID"), agency.NewAgeRange{
		Name:         req.Name,
		MinAge:       req.MinAge,
		MaxAge:       req.MaxAge,
		OccupiesSeat: req.OccupiesSeat,
	}, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ar)
}

// DeleteAgeRange removes an age range
// @Summary Delete Age Range
// @Tags AgeRanges
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param rangeID path string true "Age Range ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/age-ranges/{rangeID} [delete]
func (h *Handler) DeleteAgeRange(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())
	if err := h.ageRangeService.Delete(r.Context(), chi.URLParam(r, "agencyID"), chi.URLParam(r, "rangeID"), p.UserID); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "age range deleted",
	})
}
