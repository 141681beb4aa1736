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

package auth

// Roles
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleAgent      = "agent"
)

// Principal is the decoded identity of an authenticated caller. It is trusted
// input once the bearer token has been verified.
type Principal struct {
	UserID   string
	Role     string
	AgencyID string
}

// IsSuperAdmin reports whether the principal may act across tenants and agencies.
func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// HasRole reports whether the principal's role is one of the given roles.
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is a known role name.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleAgent:
		return true
	}
	return false
}
