package comment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/permission"
	"github.com/Guyuepp/go-comments-api/internal/textutil"
)

// maxAgentLen is the longest user agent kept on a comment.
const maxAgentLen = 254

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	perms       *permission.Evaluator
	shaper      *Shaper
	links       Links
	loc         *time.Location
	now         func() time.Time
}

var _ domain.CommentUsecase = (*service)(nil)

// NewService will create the comment resource controller. loc is the site
// time zone local comment dates are recorded in.
func NewService(
	commentRepo domain.CommentRepository,
	postRepo domain.PostRepository,
	userRepo domain.UserRepository,
	perms *permission.Evaluator,
	shaper *Shaper,
	links Links,
	loc *time.Location,
) *service {
	if loc == nil {
		loc = time.Local
	}
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		perms:       perms,
		shaper:      shaper,
		links:       links,
		loc:         loc,
		now:         time.Now,
	}
}

// List returns one page of comments. Comments the actor may not see are
// dropped from the page instead of failing the request.
func (s *service) List(ctx context.Context, actor domain.Actor, q domain.ListQuery, view string) ([]domain.CommentEnvelope, error) {
	q.Status = textutil.SanitizeKey(q.Status)

	comments, err := s.commentRepo.Query(ctx, q.Filter())
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentEnvelope, 0, len(comments))
	if len(comments) == 0 {
		return res, nil
	}

	posts, err := s.postsOf(ctx, comments)
	if err != nil {
		return nil, err
	}

	hidden := 0
	for i := range comments {
		c := &comments[i]
		if !s.perms.CanReadPost(ctx, posts[c.PostID], actor) || !s.perms.CanReadComment(c, actor) {
			hidden++
			continue
		}
		res = append(res, s.shaper.Shape(ctx, c, actor, view))
	}
	if hidden > 0 {
		logrus.Debugf("comment list: %d of %d comments hidden from actor %d", hidden, len(comments), actor.ID)
	}

	return res, nil
}

// postsOf loads the parent posts of comments in one batch.
func (s *service) postsOf(ctx context.Context, comments []domain.Comment) (map[int64]*domain.Post, error) {
	seen := make(map[int64]bool)
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		if !seen[c.PostID] {
			seen[c.PostID] = true
			ids = append(ids, c.PostID)
		}
	}

	list, err := s.postRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	posts := make(map[int64]*domain.Post, len(list))
	for i := range list {
		posts[list[i].ID] = &list[i]
	}
	return posts, nil
}

// Get returns a single comment. The comment check runs before the post is
// loaded so a caller cannot tell whether the post exists.
func (s *service) Get(ctx context.Context, actor domain.Actor, id int64, view string) (domain.CommentEnvelope, error) {
	c, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return domain.CommentEnvelope{}, err
	}

	if !s.perms.CanReadComment(c, actor) {
		return domain.CommentEnvelope{}, domain.ErrUnauthorized
	}

	p, err := s.postRepo.GetByID(ctx, c.PostID)
	if err != nil {
		return domain.CommentEnvelope{}, err
	}

	if !s.perms.CanReadPost(ctx, &p, actor) {
		return domain.CommentEnvelope{}, domain.ErrUnauthorized
	}

	return s.shaper.Shape(ctx, c, actor, view), nil
}

// Create stores a new comment and returns it as Get would in the edit view.
// Calling it twice with the same input stores two comments.
func (s *service) Create(ctx context.Context, actor domain.Actor, in domain.CommentInput) (domain.CreateResult, error) {
	c := domain.Comment{
		PostID:      in.PostID,
		UserID:      ownerFor(actor, in.UserID),
		Author:      textutil.SanitizeTextField(in.Author),
		AuthorEmail: textutil.SanitizeEmail(in.AuthorEmail),
		AuthorURL:   textutil.CanonicalURL(in.AuthorURL),
		AuthorIP:    textutil.SanitizeIP(in.AuthorIP),
		Agent:       truncate(textutil.SanitizeTextField(in.Agent), maxAgentLen),
		Content:     in.Content,
		ParentID:    in.ParentID,
		Approved:    domain.ApprovalApproved,
	}

	p, err := s.postRepo.GetByID(ctx, c.PostID)
	if err != nil {
		return domain.CreateResult{}, err
	}

	if !s.perms.CanCreateComment(ctx, &p, actor) {
		return domain.CreateResult{}, domain.ErrUnauthorized
	}

	s.fillAuthor(ctx, &c)

	now := s.now()
	c.Date = now.In(s.loc)
	c.DateGMT = now.UTC()

	id, err := s.commentRepo.Insert(ctx, &c)
	if err != nil || id == 0 {
		logrus.Errorf("failed to insert comment on post %d: %v", c.PostID, err)
		return domain.CreateResult{}, domain.ErrCreationFailed
	}

	env, err := s.Get(ctx, actor, id, domain.EditContext)
	if err != nil {
		return domain.CreateResult{}, err
	}

	return domain.CreateResult{
		Comment:  env,
		Status:   http.StatusCreated,
		Location: s.links.Comment(id),
	}, nil
}

// fillAuthor copies name and email of the owning user into empty author
// fields. Lookup failures only cost the defaults.
func (s *service) fillAuthor(ctx context.Context, c *domain.Comment) {
	if c.UserID == 0 || s.userRepo == nil || (c.Author != "" && c.AuthorEmail != "") {
		return
	}
	u, err := s.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logrus.Warnf("failed to load user %d for comment author: %v", c.UserID, err)
		}
		return
	}
	if c.Author == "" {
		c.Author = u.Name
	}
	if c.AuthorEmail == "" {
		c.AuthorEmail = u.Email
	}
}

// ownerFor resolves the owning user of a new comment. Only privileged
// actors may write on behalf of someone else.
func ownerFor(actor domain.Actor, override *int64) int64 {
	if override == nil || *override == actor.ID {
		return actor.ID
	}
	if !actor.IsPrivileged() {
		logrus.Warnf("actor %d may not comment as user %d, using own id", actor.ID, *override)
		return actor.ID
	}
	return max(*override, 0)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
