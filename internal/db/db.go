package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) InsertRecord(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllOrdered(ctx context.Context, orderColumn string, entities any) error {
	tx := f.DB.WithContext(ctx).Order(fmt.Sprintf("%s ASC", orderColumn)).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records ordered by %q: %w", orderColumn, tx.Error)
	}
	return nil
}

func (f *PostgresDB) UpdateFieldByID(ctx context.Context, model any, id any, column string, value any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Update(column, value)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteByID(ctx context.Context, model any, id any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where("id = ?", id).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting record: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
