package database

import (
	"fmt"
	"log"
	"os"

	"content-studio/internal/domain/ideas"
	"content-studio/internal/domain/prompthouse"
	"content-studio/internal/domain/script"
	"content-studio/internal/domain/storyboard"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Shared with the test
// harness, which opens its own sqlite connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// content recording
		&ideas.Idea{},
		&ideas.Source{},
		&ideas.Log{},

		// structured generation
		&script.Breakdown{},

		// storyboard
		&storyboard.SceneImage{},

		// prompt house
		&prompthouse.PromptRule{},
		&prompthouse.PromptStep{},
		&prompthouse.PromptTemplate{},
		&prompthouse.DynamicField{},
	)
}
