package model

import "github.com/Guyuepp/go-comments-api/domain"

type User struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(250);not null"`
	Email string `gorm:"type:varchar(100);not null"`
	Role  string `gorm:"type:varchar(20);not null"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Role:  m.Role,
	}
}
