package domain

import (
	"context"
	"errors"
)

type CreateRequest struct {
	Kind        Kind
	Code        string
	Name        string
	Description string
	Color       string
	ImageURL    string
}

type UpdateRequest struct {
	ID          string
	Name        *string
	Description *string
	Color       *string
	ImageURL    *string
}

type Service interface {
	Create(context.Context, CreateRequest) (Material, error)
	Update(context.Context, UpdateRequest) (Material, error)
	Delete(context.Context, string) error
	List(context.Context, Kind) ([]Material, error)
	GetByCode(context.Context, Kind, string) (Material, error)
}

var (
	ErrInvalidKind   = errors.New("invalid_kind")
	ErrInvalidCode   = errors.New("invalid_code")
	ErrInvalidID     = errors.New("invalid_id")
	ErrDuplicateCode = errors.New("duplicate_code")
	ErrNotFound      = errors.New("not_found")
)

// ParseKind validates a kind tag from the wire.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLeather, KindFinish:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}
