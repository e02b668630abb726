package config

import (
	"fmt"
	"log"
	"os"

	"github.com/pawbridge/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetR2Config() *R2Config {
	return &R2Config{
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
		Region:          "auto",
	}
}

const (
	demoAdminEmail    = "admin@pawbridge.com"
	demoAdminPassword = "adminpass123"
)

func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto Migrate models
	if err := db.AutoMigrate(&models.User{}, &models.Report{}, &models.Adoption{}, &models.Incident{}, &models.FeedLog{}, &models.Event{}, &models.Zone{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := SeedDemoAdmin(db); err != nil {
		log.Fatal("Failed to seed demo admin:", err)
	}

	return db
}

// SeedDemoAdmin creates the demo admin account so a fresh deployment always
// has one working admin login.
func SeedDemoAdmin(db *gorm.DB) error {
	var admin models.User
	if err := db.Where("email = ?", demoAdminEmail).First(&admin).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Name:     "Demo Admin",
		Email:    demoAdminEmail,
		Password: string(hashed),
		Role:     "admin",
		Status:   "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Demo admin user created")
	return nil
}
