package main

import (
	"log"

	"clinical-notes-be/internal/config"
	"clinical-notes-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Running AutoMigrate on %s (%s)...", cfg.Database.Driver, cfg.Database.Connection)
	if err := database.Migrate(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
	log.Println("Migration completed: notes table is up to date")
}
