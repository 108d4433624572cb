package repository_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func cardColumns() []string {
	return []string{"id", "title", "list_id", "created_at", "updated_at"}
}

func TestListCardRepository_GetByBoardID_JoinsThroughLists(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewListCardRepository(gormDB)

	boardID := uuid.New()
	listID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "list_cards" JOIN board_lists ON board_lists.id = list_cards.list_id WHERE board_lists.board_id = .*`).
		WithArgs(boardID).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow(uuid.New().String(), "Write docs", listID.String(), time.Now(), time.Now()))

	// Act
	cards, err := cardRepo.GetByBoardID(context.Background(), boardID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, listID, cards[0].ListID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCardRepository_GetByListID(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewListCardRepository(gormDB)

	listID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "list_cards" WHERE list_id = .*`).
		WithArgs(listID).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow(uuid.New().String(), "Write docs", listID.String(), time.Now(), time.Now()).
			AddRow(uuid.New().String(), "Review PR", listID.String(), time.Now(), time.Now()))

	// Act
	cards, err := cardRepo.GetByListID(context.Background(), listID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCardRepository_UpdateTitle(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewListCardRepository(gormDB)

	cardID := uuid.New()
	listID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "list_cards" SET .* WHERE id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .* FROM "list_cards" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow(cardID.String(), "Renamed", listID.String(), time.Now(), time.Now()))

	// Act
	card, err := cardRepo.UpdateTitle(context.Background(), cardID, "Renamed")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, card)
	assert.Equal(t, "Renamed", card.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCardRepository_UpdateListID_NoMatch(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewListCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "list_cards" SET .* WHERE id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	card, err := cardRepo.UpdateListID(context.Background(), uuid.New(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}
