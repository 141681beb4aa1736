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
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tripdesk/tripdesk/internal/trip"
)

// maxImageUploadBytes caps a single image upload.
const maxImageUploadBytes = 10 << 20

// AddTripImage uploads an image for a trip
// @Summary Add Trip Image
// @Description Upload an image as multipart form data. Setting is_main demotes any previous main image.
// @Tags TripImages
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param file formData file true "Image file"
// @Param is_main formData bool false "Flag as main image"
// @Param display_order formData int false "Display position"
// @Success 201 {object} trip.Image
// @Failure 400 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID}/images [post]
func (h *Handler) AddTripImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read image file")
		return
	}

	isMain, _ := strconv.ParseBool(r.FormValue("is_main"))
	displayOrder, _ := strconv.Atoi(r.FormValue("display_order"))

	p, _ := GetPrincipal(r.Context())
	img, err := h.imageService.Add(r.Context(), GetTrip(r.Context()), trip.Upload{
		Data:     data,
		Filename: header.Filename,
	}, isMain, displayOrder, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, img)
}

// ListTripImages lists the images of a trip
// @Summary List Trip Images
// @Tags TripImages
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Success 200 {array} trip.Image
// @Router /agencies/{agencyID}/trips/{tripID}/images [get]
func (h *Handler) ListTripImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.imageService.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if images == nil {
		images = []*trip.Image{}
	}

	respondJSON(w, http.StatusOK, images)
}

// UpdateTripImageRequest represents a JSON image patch; absent fields keep
// their current value.
type UpdateTripImageRequest struct {
	IsMain       *bool `json:"is_main"`
	DisplayOrder *int  `json:"display_order"`
}

// UpdateTripImage patches image flags and optionally replaces the file
// @Summary Update Trip Image
// @Description Patch is_main and display_order as JSON, or send multipart form data with a replacement file. Promoting an image demotes the previous main; demoting the main image leaves the trip without one.
// @Tags TripImages
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} trip.Image
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID}/images/{imageID} [put]
func (h *Handler) UpdateTripImage(w http.ResponseWriter, r *http.Request) {
	var patch trip.ImagePatch
	var upload *trip.Upload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
			respondError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		if file, header, err := r.FormFile("file"); err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
			if readErr != nil {
				respondError(w, http.StatusBadRequest, "failed to read image file")
				return
			}
			upload = &trip.Upload{Data: data, Filename: header.Filename}
		}

		if v := r.FormValue("is_main"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid is_main value")
				return
			}
			patch.IsMain = &b
		}
		if v := r.FormValue("display_order"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid display_order value")
				return
			}
			patch.DisplayOrder = &n
		}
	} else {
		var req UpdateTripImageRequest
		if err := h.decodeAndValidate(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		patch.IsMain = req.IsMain
		patch.DisplayOrder = req.DisplayOrder
	}

	p, _ := GetPrincipal(r.Context())
	img, err := h.imageService.Update(r.Context(), GetTrip(r.Context()), chi.URLParam(r, "imageID"), patch, upload, p.UserID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, img)
}

// RemoveTripImage removes an image and its stored files
// @Summary Remove Trip Image
// @Description Delete the image record and its files. If it was the main image the trip is left without one.
// @Tags TripImages
// @Produce json
// @Security BearerAuth
// @Param agencyID path string true "Agency ID"
// @Param tripID path string true "Trip ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{agencyID}/trips/{tripID}/images/{imageID} [delete]
func (h *Handler) RemoveTripImage(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())
	if err := h.imageService.Remove(r.Context(), GetTrip(r.Context()), chi.URLParam(r, "imageID"), p.UserID); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "image removed",
	})
}
