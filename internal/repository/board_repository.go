package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error)
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Board, error)
	UpdateTitleOwned(ctx context.Context, id, ownerID uuid.UUID, title string) (*model.Board, error)
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *BoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("created_by = ?", ownerID).Find(&boards).Error
	return boards, err
}

// FindOwned resolves a board only when the requester owns it. Missing and
// not-owned both come back as nil.
func (r *BoardRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, ownerID).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateTitleOwned updates in a single owner-scoped statement; the store's
// single-row atomicity is the only concurrency control.
func (r *BoardRepository) UpdateTitleOwned(ctx context.Context, id, ownerID uuid.UUID, title string) (*model.Board, error) {
	res := r.db.WithContext(ctx).Model(&model.Board{}).
		Where("id = ? AND created_by = ?", id, ownerID).
		Update("title", title)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, ownerID).Delete(&model.Board{})
	return res.RowsAffected > 0, res.Error
}
