package models

import (
	"time"

	"github.com/google/uuid"
)

// Card — серверная модель карточки.
type Card struct {
	ID        uuid.UUID
	Name      string
	Link      string
	Owner     uuid.UUID
	Likes     []uuid.UUID
	CreatedAt time.Time
}
