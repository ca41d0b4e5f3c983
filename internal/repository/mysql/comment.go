package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
	// Loc is the site time zone of the date column.
	Loc *time.Location
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository expects db to talk to MySQL in UTC (loc=UTC in the
// DSN). loc is the site time zone local dates are kept in.
func NewCommentRepository(db *gorm.DB, loc *time.Location) *commentRepository {
	if loc == nil {
		loc = time.Local
	}
	return &commentRepository{
		DB:  db,
		Loc: loc,
	}
}

func (c *commentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	domainComment := comment.ToDomain(c.Loc)
	return &domainComment, nil
}

// Query returns comments newest first. An empty status, or "all", selects
// held and approved comments; hold and approve map to their numeric form.
func (c *commentRepository) Query(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, error) {
	q := c.DB.WithContext(ctx).Model(&model.Comment{})
	if f.PostID != 0 {
		q = q.Where("post_id = ?", f.PostID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}

	switch domain.ApprovalState(f.Status) {
	case "", "all":
		q = q.Where("approved IN ?", []string{string(domain.ApprovalHold), string(domain.ApprovalApproved)})
	case domain.ApprovalHoldKey:
		q = q.Where("approved = ?", string(domain.ApprovalHold))
	case domain.ApprovalApproveKey:
		q = q.Where("approved = ?", string(domain.ApprovalApproved))
	default:
		q = q.Where("approved = ?", f.Status)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var comments []model.Comment
	err := q.Order("date_gmt DESC").Order("id DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain(c.Loc)
	}
	return res, nil
}

func (c *commentRepository) Insert(ctx context.Context, comment *domain.Comment) (int64, error) {
	commentModel := model.NewCommentFromDomain(comment, c.Loc)
	commentModel.ID = 0
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return 0, err
	}
	comment.ID = commentModel.ID
	return commentModel.ID, nil
}
