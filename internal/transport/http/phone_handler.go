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

// AddPhoneRequest represents phone registration data
type AddPhoneRequest struct {
	Type   string `json:"type" validate:"required,oneof=main mobile fax whatsapp" example:"whatsapp"`
	Number string `json:"number" validate:"required" example:"+55 11 91234-5678"`
}

// AddPhone registers a contact number for an agency
// @Summary Add Phone
// @Description Register a contact number; numbers are unique across all agencies
// @Tags Phones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param request body AddPhoneRequest true "Phone Data"
// @Success 201 {object} agency.Phone
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /agencies/{agencyID}/phones [post]
func (h *Handler) AddPhone(w http.ResponseWriter, r *http.Request) {
	var req AddPhoneRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, _ := GetPrincipal(r.Context())
	phone, err := h.phoneService.Add(r.Context(), chi.URLParam(r, "agencyID"), req.Type, req.Number, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, phone)
}

// ListPhones lists the phones of an agency
// @Summary List Phones
// @Tags Phones
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Success 200 {array} agency.Phone
// @Router /agencies/{agencyID}/phones [get]
func (h *Handler) ListPhones(w http.ResponseWriter, r *http.Request) {
	phones, err := h.phoneService.List(r.Context(), chi.URLParam(r, "agencyID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if phones == nil {
		phones = []*agency.Phone{}
	}

	respondJSON(w, http.StatusOK, phones)
}

// RemovePhone removes a contact number
// @Summary Remove Phone
// @Tags Phones
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param phoneID path string true "Phone ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/phones/{phoneID} [delete]
func (h *Handler) RemovePhone(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())
	if err := h.phoneService.Remove(r.Context(), chi.URLParam(r, "agencyID"), chi.URLParam(r, "phoneID"), p.UserID); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "phone removed",
	})
}
