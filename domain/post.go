package domain

import "context"

// Post statuses the read policy knows about.
const (
	PostStatusPublish = "publish"
	PostStatusPrivate = "private"
	PostStatusDraft   = "draft"
	PostStatusPending = "pending"
	PostStatusFuture  = "future"
	PostStatusTrash   = "trash"
	PostStatusInherit = "inherit"
)

// Post is the content item comments are attached to.
// This service only reads posts.
type Post struct {
	ID            int64
	AuthorID      int64
	ParentID      int64 // used when Status is inherit
	Status        string
	Type          string
	CommentStatus string
}

// PostRepository defines the read contract of the post store.
type PostRepository interface {
	// GetByID returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// GetByIDs returns the posts found among ids, missing ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Post, error)
}

// PostPolicy is the read-visibility predicate owned by the post resource.
type PostPolicy interface {
	CanRead(ctx context.Context, p *Post, a Actor) bool
}
