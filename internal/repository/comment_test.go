package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/repository"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Comment)
	return c, args.Error(1)
}

func (m *mockDB) Query(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, error) {
	args := m.Called(ctx, f)
	res, _ := args.Get(0).([]domain.Comment)
	return res, args.Error(1)
}

func (m *mockDB) Insert(ctx context.Context, c *domain.Comment) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Comment)
	return c, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestFindByIDCacheHit(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()

	cache.On("Get", ctx, int64(1)).Return(&domain.Comment{ID: 1}, nil).Once()

	c, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	db.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestFindByIDCacheMissFillsCache(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()
	stored := &domain.Comment{ID: 1, PostID: 7}

	cache.On("Get", ctx, int64(1)).Return(nil, domain.ErrCacheMiss).Once()
	db.On("FindByID", ctx, int64(1)).Return(stored, nil).Once()
	cache.On("Set", ctx, stored).Return(nil).Once()

	c, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, *stored, *c)
	assert.NotSame(t, stored, c)
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFindByIDCacheErrorFallsBackToDB(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()

	cache.On("Get", ctx, int64(1)).Return(nil, errors.New("redis down")).Once()
	db.On("FindByID", ctx, int64(1)).Return(&domain.Comment{ID: 1}, nil).Once()
	cache.On("Set", ctx, mock.Anything).Return(errors.New("redis down")).Once()

	c, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
}

func TestFindByIDNotFound(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()

	cache.On("Get", ctx, int64(1)).Return(nil, domain.ErrCacheMiss).Once()
	db.On("FindByID", ctx, int64(1)).Return(nil, domain.ErrNotFound).Once()

	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestFindByIDConcurrentCallers(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()

	cache.On("Get", ctx, int64(1)).Return(nil, domain.ErrCacheMiss)
	db.On("FindByID", ctx, int64(1)).Return(&domain.Comment{ID: 1}, nil)
	cache.On("Set", ctx, mock.Anything).Return(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.FindByID(ctx, 1)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), c.ID)
		}()
	}
	wg.Wait()
}

func TestQueryPassesThrough(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()
	f := domain.CommentFilter{PostID: 7, Limit: 10}

	db.On("Query", ctx, f).Return([]domain.Comment{{ID: 1}}, nil).Once()

	res, err := repo.Query(ctx, f)
	require.NoError(t, err)
	assert.Len(t, res, 1)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestInsertDropsCacheEntry(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()
	c := &domain.Comment{PostID: 7}

	db.On("Insert", ctx, c).Return(int64(9), nil).Once()
	cache.On("Delete", ctx, int64(9)).Return(nil).Once()

	id, err := repo.Insert(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	cache.AssertExpectations(t)
}

func TestInsertError(t *testing.T) {
	db, cache := new(mockDB), new(mockCache)
	repo := repository.NewCommentRepository(db, cache)
	ctx := context.Background()

	db.On("Insert", ctx, mock.Anything).Return(int64(0), errors.New("rejected")).Once()

	_, err := repo.Insert(ctx, &domain.Comment{})
	assert.Error(t, err)
	cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
