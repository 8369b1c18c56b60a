package database

import (
	"ponto/config"
	"ponto/logger"
	"ponto/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL for postgres:// URLs and to a SQLite file
// otherwise.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector := sqlite.Open(cfg.DatabaseURL)
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	level := gormlogger.Warn
	if cfg.Debug {
		level = gormlogger.Info
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
}

// Init opens the database, migrates the schema and seeds the operator account.
func Init(cfg *config.Config) (*Store, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}

	return New(db), nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.TimeEntry{}, &models.ShiftConfig{})
}

func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}
	if existing.ID != 0 {
		return adoptConfiguredHash(db, &existing, cfg.AdminPasswordHash)
	}

	admin := models.User{
		Username:           cfg.AdminUsername,
		FullName:           "Administrator",
		PasswordHash:       cfg.AdminPasswordHash,
		MustChangePassword: false,
	}

	if admin.PasswordHash == "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin.PasswordHash = string(hashedPassword)
		admin.MustChangePassword = true
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	if admin.MustChangePassword {
		logger.Warn("Default operator created; change the password on first login", "username", admin.Username, "password", "admin")
	} else {
		logger.Info("Operator account created", "username", admin.Username)
	}
	return nil
}

// adoptConfiguredHash replaces the default admin/admin credentials with a hash
// configured after the first boot. A password already changed through the
// application is left alone.
func adoptConfiguredHash(db *gorm.DB, user *models.User, hash string) error {
	if hash == "" || !user.MustChangePassword || user.PasswordHash == hash {
		return nil
	}

	err := db.Model(user).Updates(map[string]interface{}{
		"password_hash":        hash,
		"must_change_password": false,
	}).Error
	if err != nil {
		return err
	}
	logger.Info("Operator password taken from configuration", "username", user.Username)
	return nil
}
