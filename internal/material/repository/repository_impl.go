package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/material/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Create(material).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Save(material).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Material{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Material, error) {
	var material domain.Material
	err := db.WithContext(ctx).Where("id = ?", id).First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, kind domain.Kind, code string) (*domain.Material, error) {
	var material domain.Material
	err := db.WithContext(ctx).Where("kind = ? AND code = ?", kind, code).First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, kind domain.Kind) ([]*domain.Material, error) {
	var materials []*domain.Material
	err := db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("code asc").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}
