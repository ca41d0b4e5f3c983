// Package permission answers who may see or write comments.
package permission

import (
	"context"

	"github.com/Guyuepp/go-comments-api/domain"
)

// Evaluator combines the post resource's read policy with the comment rules.
type Evaluator struct {
	posts domain.PostPolicy
}

func NewEvaluator(posts domain.PostPolicy) *Evaluator {
	return &Evaluator{posts: posts}
}

// CanReadPost defers to the post resource. A nil post is never readable.
func (e *Evaluator) CanReadPost(ctx context.Context, p *domain.Post, a domain.Actor) bool {
	if p == nil {
		return false
	}
	return e.posts.CanRead(ctx, p, a)
}

// CanReadComment is true for approved comments and for the comment's owner.
func (e *Evaluator) CanReadComment(c *domain.Comment, a domain.Actor) bool {
	return CanReadComment(c, a)
}

// CanCreateComment uses post read visibility as the right to comment.
func (e *Evaluator) CanCreateComment(ctx context.Context, p *domain.Post, a domain.Actor) bool {
	return e.CanReadPost(ctx, p, a)
}

// CanReadComment reports whether a may read c. Only the numeric approved
// state counts as approved here.
func CanReadComment(c *domain.Comment, a domain.Actor) bool {
	if c == nil {
		return false
	}
	if c.Approved == domain.ApprovalApproved {
		return true
	}
	return a.Owns(c.UserID)
}

// CanRead composes post and comment visibility.
func (e *Evaluator) CanRead(ctx context.Context, p *domain.Post, c *domain.Comment, a domain.Actor) bool {
	return e.CanReadPost(ctx, p, a) && e.CanReadComment(c, a)
}
