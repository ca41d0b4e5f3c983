package model

import "github.com/Guyuepp/go-comments-api/domain"

// Post only maps the columns the read policy needs.
type Post struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	AuthorID      int64  `gorm:"column:author_id;not null"`
	ParentID      int64  `gorm:"column:parent_id;not null"`
	Status        string `gorm:"type:varchar(20);not null"`
	Type          string `gorm:"type:varchar(20);not null"`
	CommentStatus string `gorm:"column:comment_status;type:varchar(20);not null"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:            m.ID,
		AuthorID:      m.AuthorID,
		ParentID:      m.ParentID,
		Status:        m.Status,
		Type:          m.Type,
		CommentStatus: m.CommentStatus,
	}
}
