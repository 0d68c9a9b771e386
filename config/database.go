package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"triviahub/models"
)

var Database *gorm.DB

// Connect opens the database (Postgres when DB_URL is set, a local SQLite
// file otherwise) and migrates the schema.
func Connect() error {
	var err error
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "triviahub.db"
		}
		Database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(
		&models.User{},
		&models.TriviaSet{},
		&models.Question{},
		&models.Option{},
		&models.UserScore{},
	)
	if err != nil {
		panic("failed to auto migrate database")
	}

	log.Println("Connect: database ready")
	return nil
}
