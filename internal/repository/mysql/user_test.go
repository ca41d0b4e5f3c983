package mysql_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/repository/mysql"
)

func TestUserGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewUserRepository(db)
	name, email := faker.Name(), faker.Email()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "role"}).AddRow(5, name, email, "subscriber")
	mock.ExpectQuery("SELECT id, name, email, role FROM `user` WHERE id = \\?").WillReturnRows(rows)

	u, err := repo.GetByID(context.TODO(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 5, Name: name, Email: email, Role: "subscriber"}, u)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewUserRepository(db)
	mock.ExpectQuery("FROM `user` WHERE id = \\?").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.TODO(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
