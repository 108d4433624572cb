package repository_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func boardColumns() []string {
	return []string{"id", "title", "created_by", "created_at", "updated_at"}
}

func TestBoardRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	board := &model.Board{
		ID:        uuid.New(),
		Title:     "Project X",
		CreatedBy: uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "boards"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := boardRepo.Create(context.Background(), board)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetOwned(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE created_by = .*`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(boardColumns()).
			AddRow(uuid.New().String(), "Project X", ownerID.String(), time.Now(), time.Now()))

	// Act
	boards, err := boardRepo.GetOwned(context.Background(), ownerID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, boards, 1)
	assert.Equal(t, "Project X", boards[0].Title)
	assert.Equal(t, ownerID, boards[0].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_FindOwned_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	boardID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .* AND created_by = .*`).
		WillReturnRows(sqlmock.NewRows(boardColumns()).
			AddRow(boardID.String(), "Project X", ownerID.String(), time.Now(), time.Now()))

	// Act
	board, err := boardRepo.FindOwned(context.Background(), boardID, ownerID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, board)
	assert.Equal(t, boardID, board.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_FindOwned_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .* AND created_by = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act: a board owned by someone else resolves the same as a missing one.
	board, err := boardRepo.FindOwned(context.Background(), uuid.New(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, board)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_UpdateTitleOwned_Success(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	boardID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "boards" SET .* WHERE id = .* AND created_by = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows(boardColumns()).
			AddRow(boardID.String(), "Renamed", ownerID.String(), time.Now(), time.Now()))

	// Act
	board, err := boardRepo.UpdateTitleOwned(context.Background(), boardID, ownerID, "Renamed")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, board)
	assert.Equal(t, "Renamed", board.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_UpdateTitleOwned_NoMatch(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "boards" SET .* WHERE id = .* AND created_by = .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	board, err := boardRepo.UpdateTitleOwned(context.Background(), uuid.New(), uuid.New(), "Renamed")

	// Assert: zero rows affected means missing or not owned; no re-fetch.
	assert.NoError(t, err)
	assert.Nil(t, board)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_DeleteOwned(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "boards" WHERE id = .* AND created_by = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	deleted, err := boardRepo.DeleteOwned(context.Background(), uuid.New(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_DeleteOwned_NoMatch(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "boards" WHERE id = .* AND created_by = .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	deleted, err := boardRepo.DeleteOwned(context.Background(), uuid.New(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
