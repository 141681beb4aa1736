package tenant

import (
	"time"
)

// Tenant is the top-level billing and identity boundary. It owns agencies.
type Tenant struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Plan constants
const (
	PlanFree    = "free"
	PlanPro     = "pro"
	PlanPremium = "premium"
)

// Context is the tenant identity attached to a request after resolution.
type Context struct {
	TenantID   string
	TenantSlug string
}
