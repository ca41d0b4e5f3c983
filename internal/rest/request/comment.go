package request

import "github.com/Guyuepp/go-comments-api/domain"

// Comment is the body of a create request.
type Comment struct {
	PostID      int64  `json:"post_id" binding:"required,gt=0"`
	Author      string `json:"author" binding:"max=245"`
	AuthorEmail string `json:"author_email" binding:"max=100"`
	AuthorURL   string `json:"author_url" binding:"max=200"`
	AuthorIP    string `json:"author_ip" binding:"max=100"`
	Content     string `json:"content" binding:"max=65525"`
	ParentID    int64  `json:"parent_id" binding:"gte=0"`
	UserID      *int64 `json:"user_id" binding:"omitempty,gte=0"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.CommentInput {
	return domain.CommentInput{
		PostID:      r.PostID,
		Author:      r.Author,
		AuthorEmail: r.AuthorEmail,
		AuthorURL:   r.AuthorURL,
		AuthorIP:    r.AuthorIP,
		Content:     r.Content,
		ParentID:    r.ParentID,
		UserID:      r.UserID,
	}
}

// ListComments holds the filters of a list request. Paging parameters are
// parsed by the handler so bad values fall back to defaults.
type ListComments struct {
	PostID  int64  `form:"post_id" binding:"gte=0"`
	UserID  int64  `form:"user_id" binding:"gte=0"`
	Status  string `form:"status" binding:"max=20"`
	Context string `form:"context" binding:"omitempty,oneof=view edit"`
}

// ToDomain: Request -> Domain
func (r *ListComments) ToDomain(perPage, page int) domain.ListQuery {
	return domain.ListQuery{
		PerPage: perPage,
		Page:    page,
		PostID:  r.PostID,
		UserID:  r.UserID,
		Status:  r.Status,
	}
}
