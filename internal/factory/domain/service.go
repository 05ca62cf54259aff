package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, factory *Factory) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Factory, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Factory, error)
	List(ctx context.Context, db *gorm.DB) ([]*Factory, error)
}

type CreateRequest struct {
	Code string
	Name string
}

type Service interface {
	Create(context.Context, CreateRequest) (Factory, error)
	Delete(context.Context, string) error
	List(context.Context) ([]Factory, error)
	Categories(context.Context) []Category
}

var (
	ErrInvalidCode   = errors.New("invalid_code")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrDuplicateCode = errors.New("duplicate_code")
	ErrNotFound      = errors.New("not_found")
)
