package comment_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-comments-api/domain"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepo) Query(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, error) {
	args := m.Called(ctx, f)
	res, _ := args.Get(0).([]domain.Comment)
	return res, args.Error(1)
}

func (m *mockCommentRepo) Insert(ctx context.Context, c *domain.Comment) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *mockPostRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Post, error) {
	args := m.Called(ctx, ids)
	res, _ := args.Get(0).([]domain.Post)
	return res, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

// publishedPolicy lets everyone read published posts and only authors
// read the rest.
type publishedPolicy struct{}

func (publishedPolicy) CanRead(_ context.Context, p *domain.Post, a domain.Actor) bool {
	return p.Status == domain.PostStatusPublish || a.Owns(p.AuthorID)
}
