package database

import (
	"fmt"
	"log"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	seedAdminEmail    = "admin@skillpath.ai"
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and seeds the default admin account when absent.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Roadmap{},
		&model.QuizStat{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Email:    seedAdminEmail,
			Username: seedAdminUsername,
			FullName: "Admin User",
			Password: string(hashed),
			Role:     model.RoleAdmin,
			IsActive: true,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin account")
	}

	return nil
}
