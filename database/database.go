package database

import (
	"fmt"
	"log"
	"os"

	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/billing"
	"churchfeed-app/internal/domain/churches"
	"churchfeed-app/internal/domain/members"
	"churchfeed-app/internal/domain/posts"
	"churchfeed-app/internal/domain/reactions"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&churches.Church{},
		&admins.Account{},
		&admins.VerificationToken{},
		&admins.Admin{},
		&members.Member{},

		// feed
		&posts.Post{},
		&reactions.Reaction{},

		// billing
		&billing.Subscription{},
		&billing.WebhookEvent{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
