package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-comments-api/domain"
)

const (
	KeyComment = "comment:%d"

	DefaultCommentTTL = 30 * time.Second
)

type commentCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.CommentCache = (*commentCache)(nil)

// NewCommentCache keeps comments for ttl. Approval can change outside this
// service, so the ttl should stay short.
func NewCommentCache(client *redis.Client, ttl time.Duration) *commentCache {
	if ttl <= 0 {
		ttl = DefaultCommentTTL
	}
	return &commentCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *commentCache) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyComment, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var res domain.Comment
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *commentCache) Set(ctx context.Context, comment *domain.Comment) error {
	data, err := json.Marshal(comment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyComment, comment.ID), data, c.ttl).Err()
}

func (c *commentCache) Delete(ctx context.Context, id int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyComment, id)).Err()
}
