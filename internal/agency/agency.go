package agency

import (
	"time"
)

// Agency is a travel agency account under a tenant. It owns trips, age
// ranges and phones.
type Agency struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Cadastur    string    `json:"cadastur"`
	CNPJ        string    `json:"cnpj"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AgeRange is a named passenger age interval of an agency. Intervals of the
// same agency must not overlap; touching at a single endpoint is permitted.
type AgeRange struct {
	ID           string    `json:"id"`
	AgencyID     string    `json:"agency_id"`
	Name         string    `json:"name"`
	MinAge       int       `json:"min_age"`
	MaxAge       int       `json:"max_age"`
	OccupiesSeat bool      `json:"occupies_seat"`
	CreatedAt    time.Time `json:"created_at"`
}

// Phone types
const (
	PhoneMain     = "main"
	PhoneMobile   = "mobile"
	PhoneFax      = "fax"
	PhoneWhatsapp = "whatsapp"
)

// Phone is a contact number of an agency. Numbers are unique across all
// agencies, not per agency.
type Phone struct {
	ID        string    `json:"id"`
	AgencyID  string    `json:"agency_id"`
	Type      string    `json:"type"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidPhoneType reports whether t is a known phone type.
func ValidPhoneType(t string) bool {
	switch t {
	case PhoneMain, PhoneMobile, PhoneFax, PhoneWhatsapp:
		return true
	}
	return false
}
