package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"property-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePropertyStorage implements PropertyStoragePort with canned search
// results. Only the filter-query methods matter here.
type fakePropertyStorage struct {
	items []domain.PropertyCard
	total int64

	findErr  error
	countErr error

	findCalls  atomic.Int32
	countCalls atomic.Int32

	lastFilter domain.FilterSpec
	lastSort   domain.SortSpec
	lastLimit  int
	lastOffset int
}

func (f *fakePropertyStorage) FindWithFilter(ctx context.Context, filter domain.FilterSpec, sort domain.SortSpec, limit, offset int) ([]domain.PropertyCard, error) {
	f.findCalls.Add(1)
	f.lastFilter = filter
	f.lastSort = sort
	f.lastLimit = limit
	f.lastOffset = offset
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.items, nil
}

func (f *fakePropertyStorage) CountWithFilter(ctx context.Context, filter domain.FilterSpec) (int64, error) {
	f.countCalls.Add(1)
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakePropertyStorage) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return nil, domain.ErrPropertyNotFound
}
func (f *fakePropertyStorage) Create(ctx context.Context, p *domain.Property) error     { return nil }
func (f *fakePropertyStorage) Update(ctx context.Context, p *domain.Property) error     { return nil }
func (f *fakePropertyStorage) Deactivate(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakePropertyStorage) IncrementViews(ctx context.Context, id uuid.UUID) error   { return nil }
func (f *fakePropertyStorage) GetStats(ctx context.Context) (*domain.PropertyStats, error) {
	return nil, nil
}

func cards(n int) []domain.PropertyCard {
	out := make([]domain.PropertyCard, n)
	for i := range out {
		out[i] = domain.PropertyCard{ID: uuid.New(), Title: "Listing", Category: "rent"}
	}
	return out
}

func TestSearchProperties_HappyPath(t *testing.T) {
	storage := &fakePropertyStorage{items: cards(10), total: 25}
	uc := NewSearchPropertiesUseCase(storage)

	result, err := uc.Execute(context.Background(), map[string]string{
		"category": "rent",
		"page":     "2",
		"limit":    "10",
	}, nil)

	require.NoError(t, err)
	assert.Len(t, result.Items, 10)
	assert.Equal(t, domain.Pagination{
		Page: 2, Limit: 10, Total: 25, Pages: 3, HasNext: true, HasPrev: true,
	}, result.Pagination)
	assert.True(t, result.Filters.Applied)
	assert.Equal(t, "rent", result.Filters.Normalized.Category)
	assert.False(t, result.Filters.Normalized.ActiveOnly, "activity guard is stripped from the echo")

	assert.Equal(t, int32(1), storage.findCalls.Load())
	assert.Equal(t, int32(1), storage.countCalls.Load())
	assert.Equal(t, 10, storage.lastLimit)
	assert.Equal(t, 10, storage.lastOffset)
	assert.True(t, storage.lastFilter.ActiveOnly, "the store sees the activity guard")
}

func TestSearchProperties_EmptyResult(t *testing.T) {
	storage := &fakePropertyStorage{items: nil, total: 0}
	uc := NewSearchPropertiesUseCase(storage)

	result, err := uc.Execute(context.Background(), map[string]string{"search": "nothing matches this"}, nil)

	require.NoError(t, err)
	assert.NotNil(t, result.Items, "an empty page is a slice, never null")
	assert.Len(t, result.Items, 0)
	assert.Equal(t, 0, result.Pagination.Pages)
	assert.False(t, result.Pagination.HasNext)
}

func TestSearchProperties_SortSpecReachesStore(t *testing.T) {
	storage := &fakePropertyStorage{items: cards(1), total: 1}
	uc := NewSearchPropertiesUseCase(storage)

	_, err := uc.Execute(context.Background(), map[string]string{"sortBy": "price-high"}, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.SortSpec{Field: domain.SortFieldPrice, Descending: true}, storage.lastSort)
}

func TestSearchProperties_OwnerScope(t *testing.T) {
	userID := uuid.New()
	storage := &fakePropertyStorage{items: cards(2), total: 2}
	uc := NewSearchPropertiesUseCase(storage)

	_, err := uc.Execute(context.Background(),
		map[string]string{"myProperties": "true"},
		&domain.Identity{UserID: userID, Role: domain.RoleAgent})

	require.NoError(t, err)
	require.NotNil(t, storage.lastFilter.OwnerID)
	assert.Equal(t, userID, *storage.lastFilter.OwnerID)
}

func TestSearchProperties_FindErrorFailsTheQuery(t *testing.T) {
	storeErr := errors.New("connection reset")
	storage := &fakePropertyStorage{findErr: storeErr, total: 5}
	uc := NewSearchPropertiesUseCase(storage)

	result, err := uc.Execute(context.Background(), map[string]string{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, result)
}

func TestSearchProperties_CountErrorFailsTheQuery(t *testing.T) {
	storeErr := errors.New("count timed out")
	storage := &fakePropertyStorage{items: cards(3), countErr: storeErr}
	uc := NewSearchPropertiesUseCase(storage)

	result, err := uc.Execute(context.Background(), map[string]string{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, result)
}

func TestSearchProperties_BothStoreCallsHappen(t *testing.T) {
	storage := &fakePropertyStorage{items: cards(5), total: 5}
	uc := NewSearchPropertiesUseCase(storage)

	_, err := uc.Execute(context.Background(), map[string]string{}, nil)

	require.NoError(t, err)
	assert.Equal(t, int32(1), storage.findCalls.Load())
	assert.Equal(t, int32(1), storage.countCalls.Load())
}

func TestSearchProperties_Idempotent(t *testing.T) {
	storage := &fakePropertyStorage{items: cards(4), total: 4}
	uc := NewSearchPropertiesUseCase(storage)
	raw := map[string]string{"type": "duplex", "minPrice": "100", "sortBy": "size-large"}

	first, err := uc.Execute(context.Background(), raw, nil)
	require.NoError(t, err)
	firstFilter := storage.lastFilter

	second, err := uc.Execute(context.Background(), raw, nil)
	require.NoError(t, err)

	assert.Equal(t, firstFilter, storage.lastFilter, "identical input produces the identical filter")
	assert.Equal(t, first.Pagination, second.Pagination)
	assert.Equal(t, first.Filters, second.Filters)
}
