// @title TripDesk API
// @version 1.0.0
// @description Multi-tenant travel agency back office
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/tripdesk/tripdesk/internal/agency"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/auth"
	"github.com/tripdesk/tripdesk/internal/authz"
	"github.com/tripdesk/tripdesk/internal/tenant"
	"github.com/tripdesk/tripdesk/internal/trip"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Handler holds HTTP handlers and dependencies
type Handler struct {
	tenantService   *tenant.Service
	tenantResolver  *tenant.Resolver
	agencyService   *agency.Service
	ageRangeService *agency.AgeRangeService
	phoneService    *agency.PhoneService
	tripService     *trip.Service
	itemService     *trip.ItemService
	imageService    *trip.ImageService
	tokenVerifier   *auth.TokenVerifier
	guard           *authz.Guard
	auditLogger     audit.Logger
	validate        *validator.Validate
}

// NewHandler creates a new HTTP handler
func NewHandler(
	tenantService *tenant.Service,
	tenantResolver *tenant.Resolver,
	agencyService *agency.Service,
	ageRangeService *agency.AgeRangeService,
	phoneService *agency.PhoneService,
	tripService *trip.Service,
	itemService *trip.ItemService,
	imageService *trip.ImageService,
	tokenVerifier *auth.TokenVerifier,
	guard *authz.Guard,
	auditLogger audit.Logger,
) *Handler {
	return &Handler{
		tenantService:   tenantService,
		tenantResolver:  tenantResolver,
		agencyService:   agencyService,
		ageRangeService: ageRangeService,
		phoneService:    phoneService,
		tripService:     tripService,
		itemService:     itemService,
		imageService:    imageService,
		tokenVerifier:   tokenVerifier,
		guard:           guard,
		auditLogger:     auditLogger,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// NewRouter creates a new HTTP router
func NewRouter(h *Handler, rateLimiter *RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RateLimitMiddleware(rateLimiter))
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	})
	r.Use(LoggingMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(h.TenantResolverMiddleware)

	// Health check
	r.Get("/health", h.HealthCheck)

	// Public storefront: published trips of the resolved tenant
	r.With(RequireTenant).Get("/excursions", h.ListExcursions)

	// Platform admin surface. Served without a tenant; superadmin only.
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.AuthMiddleware)
		r.Use(RequireRoles(auth.RoleSuperAdmin))

		r.Route("/tenants", func(r chi.Router) {
			r.Post("/", h.CreateTenant)
			r.Get("/", h.ListTenants)
			r.Route("/{tenantID}", func(r chi.Router) {
				r.Get("/", h.GetTenant)
				r.Delete("/", h.DeleteTenant)
			})
		})
	})

	// Back-office API. Role checks run before the ownership guards so an
	// under-privileged caller is refused without any resource lookup.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		admin := RequireRoles(auth.RoleAdmin)
		staff := RequireRoles(auth.RoleAdmin, auth.RoleAgent)

		r.Route("/agencies", func(r chi.Router) {
			r.With(RequireTenant, RequireRoles(auth.RoleSuperAdmin)).Post("/", h.CreateAgency)
			r.With(RequireTenant).Get("/", h.ListAgencies)

			r.Route("/{agencyID}", func(r chi.Router) {
				r.With(h.RequireAgencyAccess).Get("/", h.GetAgency)
				r.With(admin, h.RequireAgencyAccess).Put("/", h.UpdateAgency)
				r.With(admin, h.RequireAgencyAccess).Delete("/", h.DeleteAgency)

				r.Route("/age-ranges", func(r chi.Router) {
					r.With(h.RequireAgencyAccess).Get("/", h.ListAgeRanges)
					r.With(admin, h.RequireAgencyAccess).Post("/", h.CreateAgeRange)
					r.Route("/{rangeID}", func(r chi.Router) {
						r.With(h.RequireAgencyAccess).Get("/", h.GetAgeRange)
						r.With(admin, h.RequireAgencyAccess).Put("/", h.UpdateAgeRange)
						r.With(admin, h.RequireAgencyAccess).Delete("/", h.DeleteAgeRange)
					})
				})

				r.Route("/phones", func(r chi.Router) {
					r.With(h.RequireAgencyAccess).Get("/", h.ListPhones)
					r.With(admin, h.RequireAgencyAccess).Post("/", h.AddPhone)
					r.With(admin, h.RequireAgencyAccess).Delete("/{phoneID}", h.RemovePhone)
				})

				r.Route("/trips", func(r chi.Router) {
					r.With(h.RequireAgencyAccess).Get("/", h.ListTrips)
					r.With(staff, h.RequireAgencyAccess).Post("/", h.CreateTrip)

					r.Route("/{tripID}", func(r chi.Router) {
						r.With(h.RequireTripAccess).Get("/", h.GetTrip)
						r.With(staff, h.RequireTripAccess).Put("/", h.UpdateTrip)
						r.With(staff, h.RequireTripAccess).Delete("/", h.DeleteTrip)

						r.Route("/items", func(r chi.Router) {
							r.With(h.RequireTripAccess).Get("/", h.ListTripItems)
							r.With(staff, h.RequireTripAccess).Post("/", h.CreateTripItem)
							r.With(staff, h.RequireTripAccess).Put("/{itemID}", h.UpdateTripItem)
							r.With(staff, h.RequireTripAccess).Delete("/{itemID}", h.DeleteTripItem)
						})

						r.Route("/images", func(r chi.Router) {
							r.With(h.RequireTripAccess).Get("/", h.ListTripImages)
							r.With(staff, h.RequireTripAccess).Post("/", h.AddTripImage)
							r.With(staff, h.RequireTripAccess).Put("/{imageID}", h.UpdateTripImage)
							r.With(staff, h.RequireTripAccess).Delete("/{imageID}", h.RemoveTripImage)
						})
					})
				})
			})
		})
	})

	return r
}

// HealthCheck returns the health status
// @Summary Health Check
// @Description Checks if the service is up and running
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "tripdesk",
	})
}

// ListExcursions lists the published trips of the resolved tenant
// @Summary List published excursions
// @Description Public storefront listing for the tenant resolved from the request host
// @Tags Storefront
// @Produce json
// @Success 200 {array} trip.Trip
// @Failure 404 {object} map[string]string
// @Router /excursions [get]
func (h *Handler) ListExcursions(w http.ResponseWriter, r *http.Request) {
	tc := GetTenant(r.Context())

	trips, err := h.tripService.ListPublishedByTenant(r.Context(), tc.TenantID)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	if trips == nil {
		trips = []*trip.Trip{}
	}

	respondJSON(w, http.StatusOK, trips)
}

// decodeAndValidate decodes a JSON body and runs struct validation on it.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return h.validate.Struct(dst)
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
