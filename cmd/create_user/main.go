package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ecgtrack/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Println("usage: go run ./cmd/create_user <username> <password> <age> <gender>")
		os.Exit(2)
	}
	username := os.Args[1]
	password := os.Args[2]
	age, err := strconv.Atoi(os.Args[3])
	if err != nil || age <= 0 {
		log.Fatalf("age must be a positive integer, got %q", os.Args[3])
	}
	gender := os.Args[4]

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	// check existing
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%d)\n", username, existing.ID)
		os.Exit(0)
	}

	// password stored verbatim, matching the API's login equality contract
	user := models.User{Username: username, Password: password, Age: age, Gender: gender}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%d\n", username, user.ID)
}
