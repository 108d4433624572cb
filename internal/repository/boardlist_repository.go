package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardListRepository struct {
	db *gorm.DB
}

type BoardListRepositoryInterface interface {
	Create(ctx context.Context, list *model.BoardList) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BoardList, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardList, error)
	FindInBoard(ctx context.Context, id, boardID uuid.UUID) (*model.BoardList, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.BoardList, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ BoardListRepositoryInterface = (*BoardListRepository)(nil)

func NewBoardListRepository(db *gorm.DB) *BoardListRepository {
	return &BoardListRepository{db: db}
}

func (r *BoardListRepository) Create(ctx context.Context, list *model.BoardList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *BoardListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BoardList, error) {
	var list model.BoardList
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *BoardListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.BoardList, error) {
	var lists []model.BoardList
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&lists).Error
	return lists, err
}

// FindInBoard resolves a list only when it belongs to the given board.
func (r *BoardListRepository) FindInBoard(ctx context.Context, id, boardID uuid.UUID) (*model.BoardList, error) {
	var list model.BoardList
	err := r.db.WithContext(ctx).Where("id = ? AND board_id = ?", id, boardID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateTitle updates by list id alone; the caller is responsible for the
// board ownership check.
func (r *BoardListRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.BoardList, error) {
	res := r.db.WithContext(ctx).Model(&model.BoardList{}).
		Where("id = ?", id).
		Update("title", title)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var list model.BoardList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *BoardListRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BoardList{})
	return res.RowsAffected > 0, res.Error
}
