package domain

import (
	"context"
	"errors"

	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *ExportRecord) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*ExportRecord, error)
}

type ListFilter struct {
	Kind string
}

type RecordRequest struct {
	Kind     string
	RefID    string
	Format   string
	Filename string
}

type ListRequest struct {
	Kind      string
	PageToken string
	PageSize  int
}

type ListResponse struct {
	pagination.PageInfo
	Records []ExportRecord `json:"records"`
}

type Service interface {
	Record(context.Context, RecordRequest) (ExportRecord, error)
	List(context.Context, ListRequest) (ListResponse, error)
}

var (
	ErrInvalidKind   = errors.New("invalid_kind")
	ErrInvalidFormat = errors.New("invalid_format")
	ErrInvalidID     = errors.New("invalid_id")
)
