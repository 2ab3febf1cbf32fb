package favorites

import (
	"time"

	"github.com/google/uuid"

	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
)

// Favorite bookmarks one picture date for one user. (OwnerID, APODDate) is
// unique.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_owner_date,priority:1" json:"owner_id"`
	APODDate  time.Time `gorm:"column:apod_date;type:date;not null;uniqueIndex:idx_favorites_owner_date,priority:2" json:"apod_date"`
	CreatedAt time.Time `json:"created_at"`

	Owner auth.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string { return "favorites.favorites" }

// Action is the result of a toggle.
type Action string

const (
	Added   Action = "added"
	Removed Action = "removed"
)
