package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTableMissing is returned when the kv_entries table has not been
// created yet. Call Migrate first.
var ErrTableMissing = errors.New("kv_entries table does not exist")

type kvEntry struct {
	Bucket    string `gorm:"type:varchar(255);primaryKey"`
	Payload   []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// Gorm stores keys as rows of kv_entries in a relational database,
// normally Postgres.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Migrate(ctx context.Context) error {
	return g.db.WithContext(ctx).AutoMigrate(&kvEntry{})
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry kvEntry
	err := g.db.WithContext(ctx).
		Where("bucket = ?", key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, mapPostgresError("select "+key, err)
	}
	return entry.Payload, true, nil
}

func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bucket"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&kvEntry{Bucket: key, Payload: value, UpdatedAt: time.Now().UTC()}).Error
	if err != nil {
		return mapPostgresError("upsert "+key, err)
	}
	return nil
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	err := g.db.WithContext(ctx).
		Where("bucket = ?", key).
		Delete(&kvEntry{}).Error
	if err != nil {
		return mapPostgresError("delete "+key, err)
	}
	return nil
}

func mapPostgresError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
		return fmt.Errorf("%s: %w", op, ErrTableMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}
