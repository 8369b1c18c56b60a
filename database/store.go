package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ponto/models"
	"ponto/payroll"
)

var ErrNotFound = errors.New("record not found")

// Store is the persistence collaborator for time entries, the shift
// configuration and the operator account.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateEntry(ctx context.Context, entry *models.TimeEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Store) DeleteEntry(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.TimeEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEntries returns the entries dated inside p, oldest first.
func (s *Store) ListEntries(ctx context.Context, p payroll.Period) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", p.Start, p.End).
		Order("date asc, check_in asc").
		Find(&entries).Error
	return entries, err
}

// ShiftConfig returns the saved configuration, or nil when none was saved yet.
func (s *Store) ShiftConfig(ctx context.Context) (*models.ShiftConfig, error) {
	var cfg models.ShiftConfig
	err := s.db.WithContext(ctx).First(&cfg, models.ShiftConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveShiftConfig creates the configuration row on first use and overwrites
// it afterwards.
func (s *Store) SaveShiftConfig(ctx context.Context, cfg *models.ShiftConfig) error {
	cfg.ID = models.ShiftConfigID
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at", "hourly_rate", "hazard_pay", "night_premium_percent", "shift_start", "shift_end"}),
		}).
		Create(cfg).Error
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}
