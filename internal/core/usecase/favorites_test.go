package usecase

import (
	"context"
	"testing"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFavoritesRepository struct {
	byUser map[uuid.UUID][]string
}

func newStubFavoritesRepository() *stubFavoritesRepository {
	return &stubFavoritesRepository{byUser: make(map[uuid.UUID][]string)}
}

func (r *stubFavoritesRepository) Add(ctx context.Context, userID uuid.UUID, listingID string) error {
	for _, id := range r.byUser[userID] {
		if id == listingID {
			return nil
		}
	}
	r.byUser[userID] = append(r.byUser[userID], listingID)
	return nil
}

func (r *stubFavoritesRepository) Remove(ctx context.Context, userID uuid.UUID, listingID string) error {
	ids := r.byUser[userID]
	for i, id := range ids {
		if id == listingID {
			r.byUser[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubFavoritesRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return r.byUser[userID], nil
}

func TestAddToFavorites(t *testing.T) {
	userID := uuid.New()
	source := &stubListingSource{listings: stubListings()}

	t.Run("verifies the listing exists first", func(t *testing.T) {
		repo := newStubFavoritesRepository()
		uc := NewAddToFavoritesUseCase(repo, source)

		require.NoError(t, uc.Execute(context.Background(), userID, "1"))
		assert.Equal(t, []string{"1"}, repo.byUser[userID])
	})

	t.Run("unknown listing is rejected", func(t *testing.T) {
		repo := newStubFavoritesRepository()
		uc := NewAddToFavoritesUseCase(repo, source)

		err := uc.Execute(context.Background(), userID, "999")
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
		assert.Empty(t, repo.byUser[userID])
	})
}

func TestGetUserFavorites_HydratesAndSkipsStaleIDs(t *testing.T) {
	userID := uuid.New()
	source := &stubListingSource{listings: stubListings()}
	repo := newStubFavoritesRepository()
	repo.byUser[userID] = []string{"1", "gone", "3"}

	uc := NewGetUserFavoritesUseCase(repo, source)
	favorites, err := uc.Execute(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "1", favorites[0].ID)
	assert.Equal(t, "3", favorites[1].ID)
}

func TestRemoveFromFavorites(t *testing.T) {
	userID := uuid.New()
	repo := newStubFavoritesRepository()
	repo.byUser[userID] = []string{"1", "3"}

	uc := NewRemoveFromFavoritesUseCase(repo)
	require.NoError(t, uc.Execute(context.Background(), userID, "1"))
	assert.Equal(t, []string{"3"}, repo.byUser[userID])

	// Removing an id that is not favorited is a no-op.
	require.NoError(t, uc.Execute(context.Background(), userID, "999"))
}
