package domain

import (
	"context"
	"math"
	"time"
)

// ApprovalState is the moderation state of a comment as the store keeps it.
type ApprovalState string

const (
	ApprovalHold     ApprovalState = "0"
	ApprovalApproved ApprovalState = "1"

	ApprovalHoldKey    ApprovalState = "hold"
	ApprovalApproveKey ApprovalState = "approve"
	ApprovalSpam       ApprovalState = "spam"
	ApprovalTrash      ApprovalState = "trash"
)

// Status is the normalized form sent to clients: hold, approved, or the
// stored value unchanged.
func (s ApprovalState) Status() string {
	switch s {
	case ApprovalHold, ApprovalHoldKey:
		return "hold"
	case ApprovalApproved, ApprovalApproveKey:
		return "approved"
	default:
		return string(s)
	}
}

// DefaultCommentType is reported when a comment carries no type tag.
const DefaultCommentType = "comment"

// Comment is a single discussion comment. Comments reference their parent
// by id only; a dangling ParentID is legal and is rendered all the same.
type Comment struct {
	ID          int64
	PostID      int64
	UserID      int64 // 0 when no registered user owns the comment
	Author      string
	AuthorEmail string
	AuthorURL   string
	AuthorIP    string
	Agent       string
	Content     string
	ParentID    int64
	Approved    ApprovalState
	Type        string
	Date        time.Time // site local time
	DateGMT     time.Time
}

// CommentFilter narrows a comment query. Zero values mean "no filter".
type CommentFilter struct {
	PostID int64
	UserID int64
	Status string
	Limit  int
	Offset int
}

// ListQuery is a page request against the comment collection.
type ListQuery struct {
	PerPage int
	Page    int
	PostID  int64
	UserID  int64
	Status  string
}

// Page size bounds for comment listings.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Filter turns the page request into a store filter. A page size below 1
// becomes DefaultPerPage. An offset past the largest int saturates, so the
// store returns an empty page.
func (q ListQuery) Filter() CommentFilter {
	perPage := q.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	offset := math.MaxInt
	if page-1 <= math.MaxInt/perPage {
		offset = (page - 1) * perPage
	}

	return CommentFilter{
		PostID: q.PostID,
		UserID: q.UserID,
		Status: q.Status,
		Limit:  perPage,
		Offset: offset,
	}
}

// CommentInput holds the raw fields of a create request.
type CommentInput struct {
	PostID      int64
	Author      string
	AuthorEmail string
	AuthorURL   string
	AuthorIP    string
	Agent       string
	Content     string
	ParentID    int64
	// UserID overrides the owning user, nil means the current actor.
	UserID *int64
}

// CreateResult is what a successful create reports upward.
type CreateResult struct {
	Comment  CommentEnvelope
	Status   int
	Location string
}

// Views a comment can be rendered in.
const (
	ViewContext = "view"
	EditContext = "edit"
)

// CommentUsecase is the comment resource controller.
type CommentUsecase interface {
	List(ctx context.Context, actor Actor, q ListQuery, view string) ([]CommentEnvelope, error)
	Get(ctx context.Context, actor Actor, id int64, view string) (CommentEnvelope, error)
	Create(ctx context.Context, actor Actor, in CommentInput) (CreateResult, error)
}

// CommentRepository is the comment store contract.
type CommentRepository interface {
	// FindByID returns ErrNotFound if the comment doesn't exist.
	FindByID(ctx context.Context, id int64) (*Comment, error)

	// Query returns one page of comments in store order.
	Query(ctx context.Context, f CommentFilter) ([]Comment, error)

	// Insert stores c and returns the id assigned by the store.
	Insert(ctx context.Context, c *Comment) (int64, error)
}

// CommentCache keeps single comments by id.
type CommentCache interface {
	// Get returns ErrCacheMiss when the comment is not cached.
	Get(ctx context.Context, id int64) (*Comment, error)
	Set(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}
