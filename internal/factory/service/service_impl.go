package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/factory/domain"
	"github.com/jaipurwood/prodsheet/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("factory.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Factory, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return domain.Factory{}, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Factory{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	factory := domain.Factory{
		ID:        s.genID.Generate(),
		Code:      strings.ToUpper(code),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &factory); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Factory{}, domain.ErrDuplicateCode
		}
		return domain.Factory{}, err
	}
	return factory, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil || id == 0 {
		return domain.ErrInvalidID
	}

	factory, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if factory == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Factory, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	factories := make([]domain.Factory, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		factories = append(factories, *item)
	}
	return factories, nil
}

func (s *Service) Categories(context.Context) []domain.Category {
	return domain.Categories
}
