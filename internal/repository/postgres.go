package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"talentdeck-api/internal/config"
	"talentdeck-api/internal/logging"
	"talentdeck-api/internal/pdf"
	"talentdeck-api/internal/query"
	"talentdeck-api/pkg/models"
)

// PostgresRepository is the local-database driver, used when the service
// owns its candidate store instead of proxying a remote backend.
type PostgresRepository struct {
	db     *gorm.DB
	logger logging.Logger
}

// NewPostgresRepository opens the database, configures the pool and
// migrates the candidates table.
func NewPostgresRepository(cfg *config.Config) (*PostgresRepository, error) {
	db, err := gorm.Open(postgres.Open(cfg.Repository.Postgres.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Repository.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Repository.Postgres.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Repository.Postgres.ConnMaxLifetime)

	if err := db.AutoMigrate(&models.Candidate{}); err != nil {
		return nil, fmt.Errorf("failed to migrate candidates table: %w", err)
	}

	return &PostgresRepository{
		db:     db,
		logger: logging.GetGlobalLogger().WithField("component", "postgres_repository"),
	}, nil
}

// readErr classifies a read failure: anything that is not a missing row
// means the store is unreachable, which lets the failover layer recover.
func readErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// ListAll returns every candidate
func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.WithContext(ctx).Order("id").Find(&candidates).Error; err != nil {
		return nil, readErr("list_all", err)
	}
	return candidates, nil
}

// Filter applies the spec's predicates in SQL. Ordering is left to the
// query engine.
func (r *PostgresRepository) Filter(ctx context.Context, spec query.Spec) ([]models.Candidate, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Model(&models.Candidate{})

	if spec.Role != "" {
		tx = tx.Where("applied_role = ?", spec.Role)
	}
	if spec.Status != "" {
		tx = tx.Where("status = ?", spec.Status)
	}
	if spec.Stage != "" {
		tx = tx.Where("stage = ?", spec.Stage)
	}
	if spec.Search != "" {
		term := "%" + strings.ToLower(spec.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(applied_role) LIKE ?", term, term, term)
	}
	if my := spec.MonthYear; my != nil {
		start := time.Date(my.Year, time.Month(my.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		tx = tx.Where("application_date >= ? AND application_date < ?", start, end)
	}

	var candidates []models.Candidate
	if err := tx.Order("id").Find(&candidates).Error; err != nil {
		return nil, readErr("filter", err)
	}
	return candidates, nil
}

// GetByID returns one candidate or a NotFoundError
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, readErr("get_by_id", err)
	}
	return &candidate, nil
}

// Search runs the free-text predicate in SQL
func (r *PostgresRepository) Search(ctx context.Context, text string) ([]models.Candidate, error) {
	return r.Filter(ctx, query.Spec{Search: text})
}

// UpdateStatus applies a partial update and returns the stored candidate
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, update models.UpdateStatusRequest) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, &TransportError{Op: "update_status", Err: err}
	}

	if update.Status != "" {
		candidate.Status = update.Status
	}
	if update.Stage != "" {
		candidate.Stage = update.Stage
	}
	if update.Rating != nil {
		candidate.Rating = *update.Rating
	}

	if err := r.db.WithContext(ctx).Save(&candidate).Error; err != nil {
		return nil, &TransportError{Op: "update_status", Err: err}
	}
	return &candidate, nil
}

// Import stores the batch, deriving attachment counts from collected URLs
func (r *PostgresRepository) Import(ctx context.Context, candidates []models.Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	for i := range candidates {
		if candidates[i].Attachments == 0 {
			candidates[i].Attachments = candidates[i].URLs.Count()
		}
	}

	if err := r.db.WithContext(ctx).Create(&candidates).Error; err != nil {
		return 0, &TransportError{Op: "import", Err: err}
	}
	return len(candidates), nil
}

// GeneratePDF renders the candidate document locally
func (r *PostgresRepository) GeneratePDF(ctx context.Context, id int) ([]byte, error) {
	candidate, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pdf.Generate(*candidate)
}

// Reseed wipes the table and restores the fixed sample dataset
func (r *PostgresRepository) Reseed(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Candidate{}).Error; err != nil {
			return &TransportError{Op: "reseed", Err: err}
		}
		seed := SeedCandidates()
		if err := tx.Create(&seed).Error; err != nil {
			return &TransportError{Op: "reseed", Err: err}
		}
		return nil
	})
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return &TransportError{Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &TransportError{Op: "ping", Err: err}
	}
	return nil
}
