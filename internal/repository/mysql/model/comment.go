package model

import (
	"time"

	"github.com/Guyuepp/go-comments-api/domain"
)

type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	PostID      int64     `gorm:"column:post_id;not null;index"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Author      string    `gorm:"type:tinytext;not null"`
	AuthorEmail string    `gorm:"column:author_email;type:varchar(100);not null"`
	AuthorURL   string    `gorm:"column:author_url;type:varchar(200);not null"`
	AuthorIP    string    `gorm:"column:author_ip;type:varchar(100);not null"`
	Agent       string    `gorm:"type:varchar(255);not null"`
	Content     string    `gorm:"type:text;not null"`
	ParentID    int64     `gorm:"column:parent_id;not null;index"`
	Approved    string    `gorm:"type:varchar(20);not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Date        time.Time `gorm:"type:datetime"`
	DateGMT     time.Time `gorm:"column:date_gmt;type:datetime;index"`
}

func (Comment) TableName() string {
	return "comment"
}

// NewCommentFromDomain maps c to a row. The connection runs in UTC, so the
// date column gets the wall clock of loc relabelled as UTC.
func NewCommentFromDomain(c *domain.Comment, loc *time.Location) *Comment {
	return &Comment{
		ID:          c.ID,
		PostID:      c.PostID,
		UserID:      c.UserID,
		Author:      c.Author,
		AuthorEmail: c.AuthorEmail,
		AuthorURL:   c.AuthorURL,
		AuthorIP:    c.AuthorIP,
		Agent:       c.Agent,
		Content:     c.Content,
		ParentID:    c.ParentID,
		Approved:    string(c.Approved),
		Type:        c.Type,
		Date:        toWallClock(c.Date, loc),
		DateGMT:     utc(c.DateGMT),
	}
}

// ToDomain maps the row back, reading the date column as a wall clock in loc.
func (m *Comment) ToDomain(loc *time.Location) domain.Comment {
	return domain.Comment{
		ID:          m.ID,
		PostID:      m.PostID,
		UserID:      m.UserID,
		Author:      m.Author,
		AuthorEmail: m.AuthorEmail,
		AuthorURL:   m.AuthorURL,
		AuthorIP:    m.AuthorIP,
		Agent:       m.Agent,
		Content:     m.Content,
		ParentID:    m.ParentID,
		Approved:    domain.ApprovalState(m.Approved),
		Type:        m.Type,
		Date:        fromWallClock(m.Date, loc),
		DateGMT:     utc(m.DateGMT),
	}
}

func toWallClock(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
}

func fromWallClock(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
