package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, material *Material) error
	Update(ctx context.Context, db *gorm.DB, material *Material) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Material, error)
	FindByCode(ctx context.Context, db *gorm.DB, kind Kind, code string) (*Material, error)
	List(ctx context.Context, db *gorm.DB, kind Kind) ([]*Material, error)
}
