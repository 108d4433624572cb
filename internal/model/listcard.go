package model

import (
	"time"

	"github.com/google/uuid"
)

// ListCard is an item inside a BoardList. Authorization walks the full
// chain: card -> list -> board -> owner.
type ListCard struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;index" json:"listId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	List BoardList `gorm:"foreignKey:ListID" json:"-"`
}
