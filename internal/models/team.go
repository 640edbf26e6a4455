package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a football team within a league
type Team struct {
	ID        uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Name      string    `db:"name" json:"name" validate:"required"`
	LeagueID  uuid.UUID `db:"league_id" json:"league_id" validate:"required,uuid4"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
