package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-comments-api/domain"
)

// maxInheritDepth bounds the walk up parent posts for inherit statuses.
const maxInheritDepth = 5

// ReadPolicy is the post resource's read-visibility predicate.
type ReadPolicy struct {
	postRepo domain.PostRepository
}

var _ domain.PostPolicy = (*ReadPolicy)(nil)

func NewReadPolicy(postRepo domain.PostRepository) *ReadPolicy {
	return &ReadPolicy{
		postRepo: postRepo,
	}
}

// CanRead reports whether a may see p.
//
// Published posts are public. An inherit post follows its parent, or is
// public without one. Every other status is limited to the post's author
// and privileged actors.
func (r *ReadPolicy) CanRead(ctx context.Context, p *domain.Post, a domain.Actor) bool {
	return r.canRead(ctx, p, a, 0)
}

func (r *ReadPolicy) canRead(ctx context.Context, p *domain.Post, a domain.Actor, depth int) bool {
	if p == nil {
		return false
	}

	switch p.Status {
	case domain.PostStatusPublish:
		return true
	case domain.PostStatusInherit:
		if p.ParentID == 0 {
			return true
		}
		if depth >= maxInheritDepth {
			logrus.Warnf("post %d: inherit chain deeper than %d", p.ID, maxInheritDepth)
			return false
		}
		parent, err := r.postRepo.GetByID(ctx, p.ParentID)
		if err != nil {
			logrus.Warnf("post %d: failed to load parent %d: %v", p.ID, p.ParentID, err)
			return false
		}
		return r.canRead(ctx, &parent, a, depth+1)
	default:
		return a.Owns(p.AuthorID) || a.IsPrivileged()
	}
}
