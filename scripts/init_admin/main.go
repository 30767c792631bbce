package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/listeningclub/internal/config"
	"github.com/listeningclub/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the first administrator account. Credentials come from
// ADMIN_USER_NAME / ADMIN_PASSWORD; the script refuses to run without them.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.AdminUserName == "" || cfg.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_USER_NAME and ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	if err := db.Init(cfg.DatabaseURL, cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var count int64
	if err := db.DB.Model(&db.User{}).Where("username = ?", cfg.AdminUserName).Count(&count).Error; err != nil {
		log.Fatalf("failed to check existing users: %v", err)
	}
	if count > 0 {
		fmt.Println("admin user already exists, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := db.User{
		Username: cfg.AdminUserName,
		Password: string(hashed),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("admin user %q created\n", cfg.AdminUserName)
}
