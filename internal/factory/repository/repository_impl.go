package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/factory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, factory *domain.Factory) error {
	return db.WithContext(ctx).Create(factory).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Factory{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Factory, error) {
	var factory domain.Factory
	err := db.WithContext(ctx).Where("id = ?", id).First(&factory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &factory, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Factory, error) {
	var factory domain.Factory
	err := db.WithContext(ctx).Where("code = ?", code).First(&factory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &factory, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Factory, error) {
	var factories []*domain.Factory
	err := db.WithContext(ctx).Order("code asc").Find(&factories).Error
	if err != nil {
		return nil, err
	}
	return factories, nil
}
