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

// CreateAgencyRequest represents agency registration data
type CreateAgencyRequest struct {
	Name        string `json:"name" validate:"required" example:"Sol Nascente Turismo"`
	Cadastur    string `json:"cadastur" example:"26.012345.10.0001-1"`
	CNPJ        string `json:"cnpj" example:"12.345.678/0001-90"`
	Description string `json:"description"`
}

// UpdateAgencyRequest represents a partial agency update; absent fields keep
// their current value.
type UpdateAgencyRequest struct {
	Name        *string `json:"name"`
	Cadastur    *string `json:"cadastur"`
	CNPJ        *string `json:"cnpj"`
	Description *string `json:"description"`
}

// CreateAgency registers a new agency under the resolved tenant
// @Summary Create Agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAgencyRequest true "Agency Data"
// @Success 201 {object} agency.Agency
// @Failure 400 {object} map[string]string
// @Router /agencies [post]
func (h *Handler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	var req CreateAgencyRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tc := GetTenant(r.Context())
	p, _ := GetPrincipal(r.Context())

	a, err := h.agencyService.Create(r.Context(), agency.NewAgency{
		TenantID:    tc.TenantID,
		Cadastur:    req.Cadastur,
		CNPJ:        req.CNPJ,
		Name:        req.Name,
		Description: req.Description,
	}, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, a)
}

// ListAgencies lists the agencies of the resolved tenant
// @Summary List Agencies
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} agency.Agency
// @Router /agencies [get]
func (h *Handler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	tc := GetTenant(r.Context())

	agencies, err := h.agencyService.ListByTenant(r.Context(), tc.TenantID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if agencies == nil {
		agencies = []*agency.Agency{}
	}

	respondJSON(w, http.StatusOK, agencies)
}

// GetAgency retrieves an agency
// @Summary Get Agency
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Success 200 {object} agency.Agency
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID} [get]
func (h *Handler) GetAgency(w http.ResponseWriter, r *http.Request) {
	a, err := h.agencyService.Get(r.Context(), chi.URLParam(r, "agencyID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// UpdateAgency updates agency information
// @Summary Update Agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param request body UpdateAgencyRequest true "Fields to update"
// @Success 200 {object} agency.Agency
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID} [put]
func (h *Handler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	var req UpdateAgencyRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, _ := GetPrincipal(r.Context())
	a, err := h.agencyService.Update(r.Context(), chi.URLParam(r, "agencyID"), agency.UpdateAgency{
		Cadastur:    req.Cadastur,
		CNPJ:        req.CNPJ,
		Name:        req.Name,
		Description: req.Description,
	}, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// DeleteAgency removes an agency
// @Summary Delete Agency
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID} [delete]
func (h *Handler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())
	if err := h.agencyService.Delete(r.Context(), chi.URLParam(r, "agencyID"), p.UserID); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "agency deleted",
	})
}
