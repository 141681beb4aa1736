package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolver_CandidateSlug(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"agencia.localhost:3000", "agencia"},
		{"agencia.localhost", "agencia"},
		{"bar.example.com", "bar"},
		{"bar.example.com:8080", "bar"},
		{"www.example.com", ""},
		{"api.example.com", ""},
		{"www.localhost", ""},
		{"api.localhost", ""},
		{"example.com", ""},
		{"localhost", ""},
		{"localhost:3000", ""},
		{"deep.bar.example.com", "deep"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, CandidateSlug(tt.host))
		})
	}
}

// TestPurpose: Validates that an explicit X-Tenant-ID header outranks the
// host-derived slug during tenant resolution.
// Scope: Unit Test
// Expected: Tenant "foo" is resolved even though the host names tenant "bar".
func TestResolver_HeaderWinsOverHost(t *testing.T) {
	repo := new(mockRepo)
	resolver := NewResolver(repo)
	ctx := context.Background()

	repo.On("GetBySlug", ctx, "foo").Return(&Tenant{ID: "t-foo", Slug: "foo"}, nil)

	tc, err := resolver.Resolve(ctx, "foo", "bar.example.com", "/excursions")
	require.NoError(t, err)
	require.NotNil(t, tc)
	assert.Equal(t, "t-foo", tc.TenantID)
	assert.Equal(t, "foo", tc.TenantSlug)

	repo.AssertNotCalled(t, "GetBySlug", ctx, "bar")
}

func TestResolver_HeaderSlugIsCaseInsensitive(t *testing.T) {
	repo := new(mockRepo)
	resolver := NewResolver(repo)
	ctx := context.Background()

	repo.On("GetBySlug", ctx, "foo").Return(&Tenant{ID: "t-foo", Slug: "foo"}, nil)

	// Stored slugs are lowercase; a mixed-case header still finds the tenant,
	// matching how host labels are folded.
	tc, err := resolver.Resolve(ctx, "Foo", "example.com", "/excursions")
	require.NoError(t, err)
	require.NotNil(t, tc)
	assert.Equal(t, "t-foo", tc.TenantID)
}

func TestResolver_HostSubdomainResolves(t *testing.T) {
	repo := new(mockRepo)
	resolver := NewResolver(repo)
	ctx := context.Background()

	repo.On("GetBySlug", ctx, "agencia").Return(&Tenant{ID: "t-1", Slug: "agencia"}, nil)

	tc, err := resolver.Resolve(ctx, "", "agencia.localhost:3000", "/excursions")
	require.NoError(t, err)
	require.NotNil(t, tc)
	assert.Equal(t, "t-1", tc.TenantID)
}

func TestResolver_NoCandidateNonExemptPathFails(t *testing.T) {
	repo := new(mockRepo)
	resolver := NewResolver(repo)

	tc, err := resolver.Resolve(context.Background(), "", "www.example.com", "/excursions")
	assert.Nil(t, tc)
	assert.ErrorIs(t, err, ErrNoTenantCandidate)
}

func TestResolver_NoCandidateExemptPathSucceedsWithoutTenant(t *testing.T) {
	repo := new(mockRepo)
	resolver := NewResolver(repo)
	ctx := context.Background()

	for _, path := range []string{"/admin/x", "/auth/login", "/api/v1/agencies/a1"} {
		tc, err := resolver.Resolve(ctx, "", "www.example.com", path)
		assert.NoError(t, err, path)
		assert.Nil(t, tc, path)
	}

	repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
}

func TestResolver_UnknownSlugFails(t *testing.T) {
	repo := new(mockRepo)
	resolver := NewResolver(repo)
	ctx := context.Background()

	repo.On("GetBySlug", ctx, "ghost").Return((*Tenant)(nil), ErrTenantNotFound)

	// Header slug misses even on an exempt path: an explicit slug must resolve.
	tc, err := resolver.Resolve(ctx, "ghost", "www.example.com", "/admin/x")
	assert.Nil(t, tc)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
