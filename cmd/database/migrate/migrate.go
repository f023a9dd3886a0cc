package migration

import (
	"Cookly-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.DeletedUser{},
		&entities.Recipe{},
		&entities.UserRecipe{},
		&entities.ShoppingListItem{},
		&entities.BugReport{},
		&entities.NotificationLog{},
		&entities.SubscriptionTransaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
