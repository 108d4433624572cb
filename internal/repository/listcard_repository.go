package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCardRepository struct {
	db *gorm.DB
}

type ListCardRepositoryInterface interface {
	Create(ctx context.Context, card *model.ListCard) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ListCard, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]model.ListCard, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.ListCard, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.ListCard, error)
	UpdateListID(ctx context.Context, id, listID uuid.UUID) (*model.ListCard, error)
}

var _ ListCardRepositoryInterface = (*ListCardRepository)(nil)

func NewListCardRepository(db *gorm.DB) *ListCardRepository {
	return &ListCardRepository{db: db}
}

func (r *ListCardRepository) Create(ctx context.Context, card *model.ListCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *ListCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ListCard, error) {
	var card model.ListCard
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *ListCardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.ListCard, error) {
	var cards []model.ListCard
	err := r.db.WithContext(ctx).Where("list_id = ?", listID).Find(&cards).Error
	return cards, err
}

// GetByBoardID joins through board_lists so only cards that actually sit
// under the board come back.
func (r *ListCardRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.ListCard, error) {
	var cards []model.ListCard
	err := r.db.WithContext(ctx).
		Joins("JOIN board_lists ON board_lists.id = list_cards.list_id").
		Where("board_lists.board_id = ?", boardID).
		Find(&cards).Error
	return cards, err
}

func (r *ListCardRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.ListCard, error) {
	return r.updateColumn(ctx, id, "title", title)
}

func (r *ListCardRepository) UpdateListID(ctx context.Context, id, listID uuid.UUID) (*model.ListCard, error) {
	return r.updateColumn(ctx, id, "list_id", listID)
}

func (r *ListCardRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value interface{}) (*model.ListCard, error) {
	res := r.db.WithContext(ctx).Model(&model.ListCard{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var card model.ListCard
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}
