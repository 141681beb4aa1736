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

	"github.com/tripdesk/tripdesk/internal/auth"
	"github.com/tripdesk/tripdesk/internal/tenant"
	"github.com/tripdesk/tripdesk/internal/trip"
)

type contextKey string

const (
	tenantCtxKey contextKey = "tenant_ctx"
	principalKey contextKey = "principal"
	tripKey      contextKey = "trip"
)

// GetTenant retrieves the resolved tenant context. Nil on exempt paths
// served without a tenant.
func GetTenant(ctx context.Context) *tenant.Context {
	if val, ok := ctx.Value(tenantCtxKey).(*tenant.Context); ok {
		return val
	}
	return nil
}

// GetPrincipal retrieves the authenticated principal from context.
func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	val, ok := ctx.Value(principalKey).(auth.Principal)
	return val, ok
}

// GetTrip retrieves the trip preloaded by the ownership middleware.
func GetTrip(ctx context.Context) *trip.Trip {
	if val, ok := ctx.Value(tripKey).(*trip.Trip); ok {
		return val
	}
	return nil
}
