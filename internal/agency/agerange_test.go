package agency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tripdesk/tripdesk/internal/apperr"
)

func TestAgeRange_OverlapPolicy(t *testing.T) {
	// Boundary policy: touching at a single endpoint is permitted; sharing
	// any interior point, or containment either way, is not.
	tests := []struct {
		name                           string
		candMin, candMax, exMin, exMax int
		want                           bool
	}{
		{"disjoint below", 0, 10, 20, 30, false},
		{"disjoint above", 40, 50, 20, 30, false},
		{"touch candidate max on existing min", 10, 20, 20, 30, false},
		{"touch candidate min on existing max", 30, 40, 20, 30, false},
		{"interior overlap low", 15, 25, 20, 30, true},
		{"interior overlap high", 25, 35, 20, 30, true},
		{"candidate contains existing", 18, 65, 20, 30, true},
		{"existing contains candidate", 22, 28, 20, 30, true},
		{"identical", 20, 30, 20, 30, true},
		{"same min shorter", 20, 25, 20, 30, true},
		{"same max longer", 25, 30, 20, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.candMin, tt.candMax, tt.exMin, tt.exMax))
		})
	}
}

func TestAgeRange_Create_InvalidBoundsRejectedBeforeOverlap(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	// min >= max fails regardless of overlap or name state; no lookup runs.
	for _, bounds := range [][2]int{{30, 20}, {20, 20}} {
		_, err := svc.Create(ctx, "agency-1", NewAgeRange{Name: "Adults", MinAge: bounds[0], MaxAge: bounds[1]}, "u1")
		require.Error(t, err)
		assert.Equal(t, apperr.CategoryInvalidInput, apperr.CategoryOf(err))
	}

	repo.AssertNotCalled(t, "ListByAgency", mock.Anything, mock.Anything)
}

func TestAgeRange_Create_TouchingEndpointSucceeds(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	existing := []*AgeRange{{ID: "r1", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30}}
	repo.On("ListByAgency", ctx, "agency-1").Return(existing, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*agency.AgeRange")).Return(nil)

	// [10, 20] touches [20, 30] at a single point and does not collide.
	r, err := svc.Create(ctx, "agency-1", NewAgeRange{Name: "Teens", MinAge: 10, MaxAge: 20}, "u1")
	require.NoError(t, err)
	assert.Equal(t, 20, r.MaxAge)

	repo.AssertExpectations(t)
}

func TestAgeRange_Create_InteriorOverlapConflicts(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	existing := []*AgeRange{{ID: "r1", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30}}
	repo.On("ListByAgency", ctx, "agency-1").Return(existing, nil)

	_, err := svc.Create(ctx, "agency-1", NewAgeRange{Name: "Young", MinAge: 15, MaxAge: 25}, "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryConflict, apperr.CategoryOf(err))
	assert.Contains(t, apperr.MessageOf(err), "Adults")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAgeRange_Create_ContainmentConflicts(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	existing := []*AgeRange{{ID: "r1", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30}}
	repo.On("ListByAgency", ctx, "agency-1").Return(existing, nil)

	_, err := svc.Create(ctx, "agency-1", NewAgeRange{Name: "Everyone", MinAge: 18, MaxAge: 65}, "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryConflict, apperr.CategoryOf(err))
	assert.Contains(t, apperr.MessageOf(err), "Adults")
}

func TestAgeRange_Create_FirstConflictInCreationOrder(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	// Candidate [0, 100] contains both; the first stored range is reported.
	existing := []*AgeRange{
		{ID: "r1", AgencyID: "agency-1", Name: "Children", MinAge: 0, MaxAge: 12},
		{ID: "r2", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30},
	}
	repo.On("ListByAgency", ctx, "agency-1").Return(existing, nil)

	_, err := svc.Create(ctx, "agency-1", NewAgeRange{Name: "All", MinAge: 0, MaxAge: 100}, "u1")
	require.Error(t, err)
	assert.Contains(t, apperr.MessageOf(err), "Children")
	assert.NotContains(t, apperr.MessageOf(err), "Adults")
}

func TestAgeRange_Create_DuplicateNameConflictsBeforeOverlap(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	// Same name, disjoint interval: the name check fires, not the overlap one.
	existing := []*AgeRange{{ID: "r1", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30}}
	repo.On("ListByAgency", ctx, "agency-1").Return(existing, nil)

	_, err := svc.Create(ctx, "agency-1", NewAgeRange{Name: "Adults", MinAge: 40, MaxAge: 50}, "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryConflict, apperr.CategoryOf(err))
	assert.Contains(t, apperr.MessageOf(err), "name")
}

func TestAgeRange_Update_ExcludesItselfFromOverlap(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	current := &AgeRange{ID: "r1", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30}
	repo.On("GetByID", ctx, "r1").Return(current, nil)
	repo.On("ListByAgency", ctx, "agency-1").Return([]*AgeRange{current}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*agency.AgeRange")).Return(nil)

	// Widening the range overlaps only itself; never a conflict.
	updated, err := svc.Update(ctx, "agency-1", "r1", NewAgeRange{Name: "Adults", MinAge: 18, MaxAge: 35}, "u1")
	require.NoError(t, err)
	assert.Equal(t, 18, updated.MinAge)
	assert.Equal(t, 35, updated.MaxAge)
}

func TestAgeRange_Update_RevalidatesAgainstOthers(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	current := &AgeRange{ID: "r1", AgencyID: "agency-1", Name: "Adults", MinAge: 20, MaxAge: 30}
	other := &AgeRange{ID: "r2", AgencyID: "agency-1", Name: "Seniors", MinAge: 60, MaxAge: 80}
	repo.On("GetByID", ctx, "r1").Return(current, nil)
	repo.On("ListByAgency", ctx, "agency-1").Return([]*AgeRange{current, other}, nil)

	_, err := svc.Update(ctx, "agency-1", "r1", NewAgeRange{Name: "Adults", MinAge: 20, MaxAge: 65}, "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryConflict, apperr.CategoryOf(err))
	assert.Contains(t, apperr.MessageOf(err), "Seniors")
}

func TestAgeRange_Get_WrongAgencyIsNotFound(t *testing.T) {
	repo := new(mockAgeRangeRepo)
	svc := NewAgeRangeService(repo, newMockAudit())
	ctx := context.Background()

	repo.On("GetByID", ctx, "r1").Return(&AgeRange{ID: "r1", AgencyID: "agency-2"}, nil)

	_, err := svc.Get(ctx, "agency-1", "r1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryNotFound, apperr.CategoryOf(err))
}
