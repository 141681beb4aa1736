package trip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/storage"
)

func newImageService() (*ImageService, *mockImageRepo, *mockTripRepo, *mockFileStore) {
	images := new(mockImageRepo)
	trips := new(mockTripRepo)
	files := new(mockFileStore)
	return NewImageService(images, trips, files, newMockAudit()), images, trips, files
}

func testTrip() *Trip {
	return &Trip{ID: "trip-1", AgencyID: "agency-1", Name: "Serra Gaucha"}
}

func TestImage_Add_MainDemotesOthersAndMirrorsTrip(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()
	tr := testTrip()

	stored := storage.StoredFile{
		URL:          "http://files/trips/trip-1/a.jpg",
		ThumbnailURL: "http://files/trips/trip-1/thumbs/a.jpg",
	}
	files.On("Store", ctx, []byte("img"), "a.jpg", "trips/trip-1").Return(stored, nil)
	images.On("ClearMainExcept", ctx, "trip-1", "").Return(nil)
	images.On("Create", ctx, mock.MatchedBy(func(img *Image) bool {
		return img.TripID == "trip-1" && img.IsMain && img.ImageURL == stored.URL
	})).Return(nil)
	trips.On("SetMainImage", ctx, "trip-1", stored.URL, stored.ThumbnailURL).Return(nil)

	img, err := svc.Add(ctx, tr, Upload{Data: []byte("img"), Filename: "a.jpg"}, true, 0, "u1")
	require.NoError(t, err)
	assert.True(t, img.IsMain)

	images.AssertExpectations(t)
	trips.AssertExpectations(t)
}

func TestImage_Add_NonMainSkipsDemotionAndMirror(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()

	stored := storage.StoredFile{URL: "http://files/trips/trip-1/b.jpg", ThumbnailURL: "http://files/trips/trip-1/thumbs/b.jpg"}
	files.On("Store", ctx, mock.Anything, "b.jpg", "trips/trip-1").Return(stored, nil)
	images.On("Create", ctx, mock.AnythingOfType("*trip.Image")).Return(nil)

	img, err := svc.Add(ctx, testTrip(), Upload{Data: []byte("img"), Filename: "b.jpg"}, false, 2, "u1")
	require.NoError(t, err)
	assert.False(t, img.IsMain)
	assert.Equal(t, 2, img.DisplayOrder)

	images.AssertNotCalled(t, "ClearMainExcept", mock.Anything, mock.Anything, mock.Anything)
	trips.AssertNotCalled(t, "SetMainImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImage_Add_MissingFileRejected(t *testing.T) {
	svc, _, _, files := newImageService()

	_, err := svc.Add(context.Background(), testTrip(), Upload{}, true, 0, "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryInvalidInput, apperr.CategoryOf(err))

	files.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImage_Update_PromotionDemotesOthersAndMirrorsTrip(t *testing.T) {
	svc, images, trips, _ := newImageService()
	ctx := context.Background()

	current := &Image{
		ID:           "img-2",
		TripID:       "trip-1",
		ImageURL:     "http://files/trips/trip-1/b.jpg",
		ThumbnailURL: "http://files/trips/trip-1/thumbs/b.jpg",
		IsMain:       false,
	}
	images.On("GetByID", ctx, "img-2").Return(current, nil)
	images.On("ClearMainExcept", ctx, "trip-1", "img-2").Return(nil)
	images.On("Update", ctx, mock.MatchedBy(func(img *Image) bool { return img.IsMain })).Return(nil)
	trips.On("SetMainImage", ctx, "trip-1", current.ImageURL, current.ThumbnailURL).Return(nil)

	isMain := true
	img, err := svc.Update(ctx, testTrip(), "img-2", ImagePatch{IsMain: &isMain}, nil, "u1")
	require.NoError(t, err)
	assert.True(t, img.IsMain)

	images.AssertExpectations(t)
	trips.AssertExpectations(t)
}

func TestImage_Update_AlreadyMainSkipsClearingButRefreshesMirror(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()

	current := &Image{
		ID:           "img-1",
		TripID:       "trip-1",
		ImageURL:     "http://files/trips/trip-1/old.jpg",
		ThumbnailURL: "http://files/trips/trip-1/thumbs/old.jpg",
		IsMain:       true,
	}
	replacement := storage.StoredFile{
		URL:          "http://files/trips/trip-1/new.jpg",
		ThumbnailURL: "http://files/trips/trip-1/thumbs/new.jpg",
	}

	images.On("GetByID", ctx, "img-1").Return(current, nil)
	files.On("Delete", ctx, "http://files/trips/trip-1/old.jpg").Return(nil)
	files.On("Delete", ctx, "http://files/trips/trip-1/thumbs/old.jpg").Return(nil)
	files.On("Store", ctx, []byte("new"), "new.jpg", "trips/trip-1").Return(replacement, nil)
	images.On("Update", ctx, mock.AnythingOfType("*trip.Image")).Return(nil)
	trips.On("SetMainImage", ctx, "trip-1", replacement.URL, replacement.ThumbnailURL).Return(nil)

	img, err := svc.Update(ctx, testTrip(), "img-1", ImagePatch{}, &Upload{Data: []byte("new"), Filename: "new.jpg"}, "u1")
	require.NoError(t, err)
	assert.True(t, img.IsMain)
	assert.Equal(t, replacement.URL, img.ImageURL)

	// staying main must not trigger a demotion pass
	images.AssertNotCalled(t, "ClearMainExcept", mock.Anything, mock.Anything, mock.Anything)
	trips.AssertExpectations(t)
}

func TestImage_Update_DemotionClearsTripMirror(t *testing.T) {
	svc, images, trips, _ := newImageService()
	ctx := context.Background()

	current := &Image{ID: "img-1", TripID: "trip-1", ImageURL: "u", ThumbnailURL: "t", IsMain: true}
	images.On("GetByID", ctx, "img-1").Return(current, nil)
	images.On("Update", ctx, mock.MatchedBy(func(img *Image) bool { return !img.IsMain })).Return(nil)
	trips.On("SetMainImage", ctx, "trip-1", "", "").Return(nil)

	isMain := false
	img, err := svc.Update(ctx, testTrip(), "img-1", ImagePatch{IsMain: &isMain}, nil, "u1")
	require.NoError(t, err)
	assert.False(t, img.IsMain)

	trips.AssertExpectations(t)
}

func TestImage_Update_ReplacementDeleteFailureSurfaces(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()

	current := &Image{ID: "img-1", TripID: "trip-1", ImageURL: "u", ThumbnailURL: "t"}
	images.On("GetByID", ctx, "img-1").Return(current, nil)
	files.On("Delete", ctx, "u").Return(errors.New("backend down"))

	_, err := svc.Update(ctx, testTrip(), "img-1", ImagePatch{}, &Upload{Data: []byte("new"), Filename: "n.jpg"}, "u1")
	require.Error(t, err)

	files.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	images.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	trips.AssertNotCalled(t, "SetMainImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImage_Remove_MainImageClearsTripMirror(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()

	current := &Image{ID: "img-1", TripID: "trip-1", ImageURL: "u", ThumbnailURL: "t", IsMain: true}
	images.On("GetByID", ctx, "img-1").Return(current, nil)
	files.On("Delete", ctx, "u").Return(nil)
	files.On("Delete", ctx, "t").Return(nil)
	images.On("Delete", ctx, "img-1").Return(nil)
	trips.On("SetMainImage", ctx, "trip-1", "", "").Return(nil)

	require.NoError(t, svc.Remove(ctx, testTrip(), "img-1", "u1"))

	images.AssertExpectations(t)
	trips.AssertExpectations(t)
}

func TestImage_Remove_FileCleanupFailureDoesNotBlockRecordDelete(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()

	current := &Image{ID: "img-1", TripID: "trip-1", ImageURL: "u", ThumbnailURL: "t", IsMain: false}
	images.On("GetByID", ctx, "img-1").Return(current, nil)
	files.On("Delete", ctx, "u").Return(errors.New("gone already"))
	files.On("Delete", ctx, "t").Return(errors.New("gone already"))
	images.On("Delete", ctx, "img-1").Return(nil)

	require.NoError(t, svc.Remove(ctx, testTrip(), "img-1", "u1"))

	trips.AssertNotCalled(t, "SetMainImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImage_Remove_NonMainLeavesTripMirrorAlone(t *testing.T) {
	svc, images, trips, files := newImageService()
	ctx := context.Background()

	current := &Image{ID: "img-3", TripID: "trip-1", ImageURL: "u", ThumbnailURL: "t", IsMain: false}
	images.On("GetByID", ctx, "img-3").Return(current, nil)
	files.On("Delete", ctx, mock.Anything).Return(nil)
	images.On("Delete", ctx, "img-3").Return(nil)

	require.NoError(t, svc.Remove(ctx, testTrip(), "img-3", "u1"))

	trips.AssertNotCalled(t, "SetMainImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImage_Get_WrongTripIsNotFound(t *testing.T) {
	svc, images, _, _ := newImageService()
	ctx := context.Background()

	images.On("GetByID", ctx, "img-1").Return(&Image{ID: "img-1", TripID: "other-trip"}, nil)

	_, err := svc.Get(ctx, "trip-1", "img-1")
	require.Error(t, err)
	assert.Equal(t, apperr.CategoryNotFound, apperr.CategoryOf(err))
}
