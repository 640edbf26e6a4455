package models

import (
	"time"

	"github.com/google/uuid"
)

// League represents a football competition
type League struct {
	ID        uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Code      string    `db:"code" json:"code" validate:"required"` // Provider competition code, e.g. "PL"
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
