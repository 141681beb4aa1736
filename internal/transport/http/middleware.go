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
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/auth"
	"github.com/tripdesk/tripdesk/internal/observability/logger"
	"github.com/tripdesk/tripdesk/internal/tenant"
)

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Log request start
			slog.InfoContext(r.Context(), "http_request_start",
				logger.RequestID(middleware.GetReqID(r.Context())),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.RemoteAddr(r.RemoteAddr),
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				slog.InfoContext(r.Context(), "http_request_end",
					logger.RequestID(middleware.GetReqID(r.Context())),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.RemoteAddr(r.RemoteAddr),
					logger.UserAgent(r.UserAgent()),
					logger.StatusCode(ww.Status()),
					logger.Duration(time.Since(start).Milliseconds()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// TenantResolverMiddleware resolves the request's tenant before any handler
// runs. The X-Tenant-ID header wins over the host subdomain; requests that
// yield no candidate are served only on exempt paths. Resolution failures
// are reported as not found so probing for tenant slugs reveals nothing.
func (h *Handler) TenantResolverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc, err := h.tenantResolver.Resolve(r.Context(), r.Header.Get(tenant.SlugHeader), r.Host, r.URL.Path)
		if err != nil {
			if errors.Is(err, tenant.ErrTenantNotFound) || errors.Is(err, tenant.ErrNoTenantCandidate) {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			slog.ErrorContext(r.Context(), "tenant resolution failed", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if tc == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), tenantCtxKey, tc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireTenant enforces that a tenant context is present.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetTenant(r.Context()) == nil {
			respondError(w, http.StatusNotFound, "unable to identify tenant from request")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware validates the bearer token and adds the principal to context
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		p, err := h.tokenVerifier.Verify(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects principals whose role is not in the allowed set.
// Superadmin always passes.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := GetPrincipal(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if !p.IsSuperAdmin() && !p.HasRole(roles...) {
				respondError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAgencyAccess verifies the agency ownership chain of routes carrying
// an {agencyID} parameter. Denials are audited.
func (h *Handler) RequireAgencyAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		agencyID := chi.URLParam(r, "agencyID")
		if _, err := h.guard.AuthorizeAgency(r.Context(), p, GetTenant(r.Context()), agencyID); err != nil {
			h.auditDenied(r, p, agencyID, "")
			respondAppError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireTripAccess extends the agency check down to a {tripID} parameter and
// preloads the verified trip into context for the handler.
func (h *Handler) RequireTripAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		agencyID := chi.URLParam(r, "agencyID")
		tripID := chi.URLParam(r, "tripID")
		t, err := h.guard.AuthorizeTrip(r.Context(), p, GetTenant(r.Context()), agencyID, tripID)
		if err != nil {
			h.auditDenied(r, p, agencyID, tripID)
			respondAppError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), tripKey, t)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) auditDenied(r *http.Request, p auth.Principal, agencyID, tripID string) {
	tenantID := ""
	if tc := GetTenant(r.Context()); tc != nil {
		tenantID = tc.TenantID
	}
	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeAccessDenied,
		TenantID:  tenantID,
		ActorID:   p.UserID,
		AgencyID:  agencyID,
		Resource:  r.URL.Path,
		IPAddress: getIPAddress(r),
		UserAgent: r.UserAgent(),
		Metadata:  map[string]any{"trip_id": tripID, "role": p.Role},
	})
}

// respondAppError maps a service error to an HTTP status.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.CategoryOf(err) {
	case apperr.CategoryNotFound:
		respondError(w, http.StatusNotFound, apperr.MessageOf(err))
	case apperr.CategoryForbidden:
		respondError(w, http.StatusForbidden, apperr.MessageOf(err))
	case apperr.CategoryConflict:
		respondError(w, http.StatusConflict, apperr.MessageOf(err))
	case apperr.CategoryInvalidInput:
		respondError(w, http.StatusBadRequest, apperr.MessageOf(err))
	default:
		slog.ErrorContext(r.Context(), "request failed", logger.Error(err), logger.Path(r.URL.Path))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
