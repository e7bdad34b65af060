package main

import (
	"log"
	"os"

	"lms-presentation-be/internal/model"
	"lms-presentation-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. AutoMigrate
	log.Println("Running AutoMigrate...")

	models := []interface{}{
		&model.Presentation{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// slide lookups by layout are served from the jsonb column
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_presentations_slides_gin ON presentations USING GIN (slides jsonb_path_ops);`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Printf("Warn: Failed to create slides index: %v", err)
	}

	log.Println("✅ Migration completed")
}
