package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/hooks"
)

// Hook names, exposed so the surrounding system can find the pipelines.
const (
	HookCommentText    = "comment_text"
	HookCommentType    = "comment_type"
	HookPrepareComment = "prepare_comment"
)

// Hooks are the extension points the shaper invokes.
type Hooks struct {
	Text    *hooks.Pipeline[string]
	Type    *hooks.Pipeline[string]
	Prepare *hooks.Pipeline[domain.CommentEnvelope]
}

func NewHooks() *Hooks {
	return &Hooks{
		Text:    hooks.New[string](HookCommentText),
		Type:    hooks.New[string](HookCommentType),
		Prepare: hooks.New[domain.CommentEnvelope](HookPrepareComment),
	}
}

// Links builds absolute resource URLs under a base URL.
type Links struct {
	base string
}

func NewLinks(baseURL string) Links {
	return Links{base: strings.TrimRight(baseURL, "/")}
}

func (l Links) Comment(id int64) string {
	return fmt.Sprintf("%s/comments/%d", l.base, id)
}

func (l Links) User(id int64) string {
	return fmt.Sprintf("%s/users/%d", l.base, id)
}

// Shaper maps stored comments to envelopes.
type Shaper struct {
	links Links
	hooks *Hooks
}

func NewShaper(links Links, h *Hooks) *Shaper {
	if h == nil {
		h = NewHooks()
	}
	return &Shaper{
		links: links,
		hooks: h,
	}
}

// Shape builds the envelope for c as seen by actor in the given view.
func (s *Shaper) Shape(ctx context.Context, c *domain.Comment, actor domain.Actor, view string) domain.CommentEnvelope {
	args := domain.HookArgs{Comment: c, Actor: actor, View: view}

	env := domain.CommentEnvelope{
		ID:      c.ID,
		PostID:  c.PostID,
		Content: domain.RenderedContent{Rendered: s.hooks.Text.Apply(ctx, c.Content, args)},
		Status:  c.Approved.Status(),
		Type:    s.hooks.Type.Apply(ctx, c.Type, args),
		Date:    formatDate(c.Date),
		DateGMT: formatDate(c.DateGMT.UTC()),
		Links:   make(map[string]domain.Link),
	}
	if env.Type == "" {
		env.Type = domain.DefaultCommentType
	}

	if c.ParentID != 0 {
		parent := domain.Link{Href: s.links.Comment(c.ParentID)}
		env.Links[domain.RelParent] = parent
		env.Links[domain.RelInReplyTo] = parent
	}
	// comments left by visitors without an account get no author link
	if c.UserID != 0 {
		env.Links[domain.RelAuthor] = domain.Link{Href: s.links.User(c.UserID)}
	}

	return s.hooks.Prepare.Apply(ctx, env, args)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
