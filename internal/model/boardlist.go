package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardList is a named column inside a Board. It is reachable only through
// a board owned by the requester.
type BoardList struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index" json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
