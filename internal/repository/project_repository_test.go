package repository_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var projectColumns = []string{"id", "name", "owner_id", "created_at", "updated_at"}

func TestProjectRepository_ListForUser_OwnedAndShared(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)

	userID := uuid.New()
	ownedID := uuid.New()
	sharedID := uuid.New()
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE owner_id = \$1`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(ownedID.String(), "Mine", userID.String(), older, older))
	mock.ExpectQuery(`SELECT "project_id" FROM "project_members" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(sharedID.String()))
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id IN \(\$1\) AND owner_id <> \$2`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(sharedID.String(), "Theirs", uuid.NewString(), newer, newer))

	// Act
	projects, err := projectRepo.ListForUser(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, sharedID, projects[0].ID)
	assert.Equal(t, model.RoleMember, projects[0].Role)
	assert.Equal(t, ownedID, projects[1].ID)
	assert.Equal(t, model.RoleOwner, projects[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListForUser_MembershipLookupFails(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE owner_id = \$1`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(uuid.NewString(), "A", userID.String(), now, now).
			AddRow(uuid.NewString(), "B", userID.String(), now, now))
	mock.ExpectQuery(`SELECT "project_id" FROM "project_members"`).
		WillReturnError(&pgconn.PgError{Code: "42501", Message: "permission denied for table project_members"})

	// Act
	projects, err := projectRepo.ListForUser(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, model.RoleOwner, p.Role)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListForUser_PolicyRecursion(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE owner_id = \$1`).
		WillReturnError(&pgconn.PgError{Code: "42P17", Message: "infinite recursion detected in policy"})

	// Act
	projects, err := projectRepo.ListForUser(context.Background(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListForUser_SchemaMissing(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE owner_id = \$1`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "projects" does not exist`})

	// Act
	projects, err := projectRepo.ListForUser(context.Background(), uuid.New())

	// Assert
	assert.Nil(t, projects)
	assert.ErrorIs(t, err, repository.ErrSchemaMissing)
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := projectRepo.Delete(context.Background(), uuid.New())

	// Assert
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)
	projectID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET "name"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("Roadmap", sqlmock.AnyArg(), projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID.String(), "Roadmap", uuid.NewString(), now, now))

	// Act
	project, err := projectRepo.Update(context.Background(), projectID, "Roadmap")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
	assert.Equal(t, "Roadmap", project.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB, nopLog)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET "name"=`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	_, err := projectRepo.Update(context.Background(), uuid.New(), "Roadmap")

	// Assert
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
