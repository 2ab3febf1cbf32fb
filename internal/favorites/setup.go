package favorites

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/EmpoweredVote/APOD-Backend/internal/db"
)

// Init must run after auth.Init; favorites reference app_auth.users.
func Init(d *gorm.DB) error {
	if err := db.EnsureSchema(d, "favorites"); err != nil {
		return fmt.Errorf("ensure schema favorites: %w", err)
	}

	if err := d.AutoMigrate(&Favorite{}); err != nil {
		return fmt.Errorf("auto-migrate favorites tables: %w", err)
	}
	return nil
}
