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

// TripItemRequest represents an included/excluded item entry
type TripItemRequest struct {
	Name       string `json:"name" validate:"required" example:"Café da manhã"`
	IsIncluded bool   `json:"is_included" example:"true"`
}

// CreateTripItem adds an item to a trip
// @Summary Create Trip Item
// @Tags TripItems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param request body TripItemRequest true "Item Data"
// @Success 201 {object} trip.Item
// @Failure 400 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID}/items [post]
func (h *Handler) CreateTripItem(w http.ResponseWriter, r *http.Request) {
	var req TripItemRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.itemService.Create(r.Context(), chi.URLParam(r, "tripID"), req.Name, req.IsIncluded)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// ListTripItems lists the items of a trip
// @Summary List Trip Items
// @Tags TripItems
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Success 200 {array} trip.Item
// @Router /agencies/{agencyID}/trips/{tripID}/items [get]
func (h *Handler) ListTripItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if items == nil {
		items = []*trip.Item{}
	}

	respondJSON(w, http.StatusOK, items)
}

// UpdateTripItem updates a trip item
// @Summary Update Trip Item
// @Tags TripItems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param itemID path string true "Item ID"
// @Param request body TripItemRequest true "Item Data"
// @Success 200 {object} trip.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID}/items/{itemID} [put]
func (h *Handler) UpdateTripItem(w http.ResponseWriter, r *http.Request) {
	var req TripItemRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.itemService.Update(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"), req.Name, req.IsIncluded)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// DeleteTripItem removes a trip item
// @Summary Delete Trip Item
// @Tags TripItems
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID}/items/{itemID} [delete]
func (h *Handler) DeleteTripItem(w http.ResponseWriter, r *http.Request) {
	if err := h.itemService.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID")); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "item deleted",
	})
}
