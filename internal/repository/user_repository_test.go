package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/logger"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

var nopLog = logger.NewNop()

func TestUserRepository_Upsert(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	user := &model.User{
		ID:    uuid.New(),
		Email: "ana@example.com",
		Name:  "ana",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	saved, err := userRepo.Upsert(context.Background(), user)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, user.ID, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "avatar_url", "created_at", "updated_at"}).
			AddRow(userID.String(), "ana@example.com", "Ana", nil, now, now))

	// Act
	user, err := userRepo.GetByID(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Nil(t, user.AvatarURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	user, err := userRepo.GetByID(context.Background(), uuid.New())

	// Assert
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.Equal(t, repository.KindNotFound, repository.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY name`).
		WillReturnError(assert.AnError)

	// Act
	users, err := userRepo.List(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Nil(t, users)
	assert.Equal(t, repository.KindUnknown, repository.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
