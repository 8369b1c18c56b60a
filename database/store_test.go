package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ponto/config"
	"ponto/models"
	"ponto/payroll"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{
		DatabaseURL:   filepath.Join(t.TempDir(), "ponto.db"),
		AdminUsername: "admin",
	}
	store, err := Init(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func addEntry(t *testing.T, store *Store, date, in, out string) models.TimeEntry {
	t.Helper()

	s, err := payroll.NormalizeSession(date, in, out)
	require.NoError(t, err)
	entry := models.NewTimeEntry(s, payroll.Overtime{})
	require.NoError(t, store.CreateEntry(context.Background(), &entry))
	return entry
}

func TestInitSeedsDefaultAdmin(t *testing.T) {
	store := newTestStore(t)

	user, err := store.UserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, user.MustChangePassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin")))

	byID, err := store.UserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)
}

func TestInitUsesConfiguredHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		DatabaseURL:       filepath.Join(t.TempDir(), "ponto.db"),
		AdminUsername:     "operador",
		AdminPasswordHash: string(hash),
	}
	store, err := Init(cfg)
	require.NoError(t, err)
	defer store.Close()

	user, err := store.UserByUsername(context.Background(), "operador")
	require.NoError(t, err)
	assert.False(t, user.MustChangePassword)
	assert.Equal(t, string(hash), user.PasswordHash)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, seedDefaultAdmin(store.DB(), &config.Config{AdminUsername: "admin"}))

	var count int64
	require.NoError(t, store.DB().Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConfiguredHashSurvivesReopen(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		DatabaseURL:       filepath.Join(t.TempDir(), "ponto.db"),
		AdminUsername:     "operador",
		AdminPasswordHash: string(hash),
	}
	first, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	store, err := Init(cfg)
	require.NoError(t, err)
	defer store.Close()

	var stored models.User
	require.NoError(t, store.DB().Where("username = ?", "operador").First(&stored).Error)
	assert.False(t, stored.MustChangePassword)
}

func TestSeedAdoptsHashConfiguredLater(t *testing.T) {
	store := newTestStore(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{AdminUsername: "admin", AdminPasswordHash: string(hash)}
	require.NoError(t, seedDefaultAdmin(store.DB(), cfg))

	user, err := store.UserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.False(t, user.MustChangePassword)
	assert.Equal(t, string(hash), user.PasswordHash)
}

func TestSeedKeepsChangedPassword(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.UserByUsername(ctx, "admin")
	require.NoError(t, err)
	changed, err := bcrypt.GenerateFromPassword([]byte("novasenha"), bcrypt.MinCost)
	require.NoError(t, err)
	user.PasswordHash = string(changed)
	user.MustChangePassword = false
	require.NoError(t, store.SaveUser(ctx, user))

	configured, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{AdminUsername: "admin", AdminPasswordHash: string(configured)}
	require.NoError(t, seedDefaultAdmin(store.DB(), cfg))

	reloaded, err := store.UserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, reloaded.MustChangePassword)
	assert.Equal(t, string(changed), reloaded.PasswordHash)
}

func TestUnknownUser(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.UserByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEntriesFiltersByPeriod(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addEntry(t, store, "2025-02-15", "08:00", "17:00")
	addEntry(t, store, "2025-03-15", "08:00", "17:00")
	addEntry(t, store, "2025-02-16", "22:00", "06:00")
	addEntry(t, store, "2025-02-16", "08:00", "12:00")
	addEntry(t, store, "2025-03-16", "08:00", "17:00")

	entries, err := store.ListEntries(ctx, payroll.Cycle(2025, time.March))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "2025-02-16", entries[0].Date.Format(payroll.DateLayout))
	assert.Equal(t, "08:00", entries[0].CheckIn.Format(payroll.ClockLayout))
	assert.Equal(t, "22:00", entries[1].CheckIn.Format(payroll.ClockLayout))
	assert.Equal(t, "2025-03-15", entries[2].Date.Format(payroll.DateLayout))
	assert.Equal(t, int64(8*3600), entries[1].TotalSeconds)
}

func TestDeleteEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := addEntry(t, store, "2025-03-01", "08:00", "17:00")
	require.NoError(t, store.DeleteEntry(ctx, entry.ID))

	entries, err := store.ListEntries(ctx, payroll.MonthPeriod(2025, time.March))
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, store.DeleteEntry(ctx, entry.ID), ErrNotFound)
}

func TestShiftConfigSingleton(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg, err := store.ShiftConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	first := models.NewShiftConfig(payroll.ShiftConfig{
		HourlyRate: decimal.RequireFromString("10"),
		ShiftStart: payroll.MustParseClock("08:00"),
		ShiftEnd:   payroll.MustParseClock("17:00"),
	})
	require.NoError(t, store.SaveShiftConfig(ctx, &first))

	second := models.NewShiftConfig(payroll.ShiftConfig{
		HourlyRate:          decimal.RequireFromString("12.50"),
		HazardPay:           true,
		NightPremiumPercent: 20,
		ShiftStart:          payroll.MustParseClock("22:00"),
		ShiftEnd:            payroll.MustParseClock("06:00"),
	})
	require.NoError(t, store.SaveShiftConfig(ctx, &second))

	var count int64
	require.NoError(t, store.DB().Model(&models.ShiftConfig{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	cfg, err = store.ShiftConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.HourlyRate.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, cfg.HazardPay)
	assert.Equal(t, 20, cfg.NightPremiumPercent)
	assert.Equal(t, "22:00", cfg.ShiftStart)
	assert.Equal(t, "06:00", cfg.ShiftEnd)
}

func TestPing(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
