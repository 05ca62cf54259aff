package repository

import (
	"context"

	"github.com/jaipurwood/prodsheet/internal/export/domain"
	"github.com/jaipurwood/prodsheet/pkg/db/option"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.ExportRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.ExportRecord, error) {
	var records []*domain.ExportRecord
	stmt := db.WithContext(ctx).Model(&domain.ExportRecord{})
	if filter.Kind != "" {
		stmt = stmt.Where("kind = ?", filter.Kind)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
