package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-comments-api/domain"
)

// commentRepository 协调层，协调缓存和数据库
type commentRepository struct {
	db    domain.CommentRepository
	cache domain.CommentCache
	group singleflight.Group
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 创建协调层repository
func NewCommentRepository(db domain.CommentRepository, cache domain.CommentCache) *commentRepository {
	return &commentRepository{
		db:    db,
		cache: cache,
	}
}

// FindByID reads through the cache. Concurrent misses for one id share a
// single database lookup.
func (r *commentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := r.cache.Get(ctx, id)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("comment cache get error: %v", err)
	}

	v, err, _ := r.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		c, err := r.db.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(ctx, c); err != nil {
			logrus.Warnf("failed to set comment %d in cache: %v", id, err)
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	res := *v.(*domain.Comment)
	return &res, nil
}

func (r *commentRepository) Query(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, error) {
	return r.db.Query(ctx, f)
}

func (r *commentRepository) Insert(ctx context.Context, c *domain.Comment) (int64, error) {
	id, err := r.db.Insert(ctx, c)
	if err != nil {
		return 0, err
	}
	// a stale entry may exist if the store reused the id
	if err := r.cache.Delete(ctx, id); err != nil {
		logrus.Warnf("failed to drop comment %d from cache: %v", id, err)
	}
	return id, nil
}
