package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/material/domain"
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
		log:   p.Log.Named("material.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Material, error) {
	kind, err := domain.ParseKind(string(req.Kind))
	if err != nil {
		return domain.Material{}, err
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return domain.Material{}, domain.ErrInvalidCode
	}

	now := time.Now().UTC()
	material := domain.Material{
		ID:          s.genID.Generate(),
		Kind:        kind,
		Code:        code,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Color:       strings.TrimSpace(req.Color),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &material); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Material{}, domain.ErrDuplicateCode
		}
		return domain.Material{}, err
	}
	return material, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.Material, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Material{}, err
	}

	material, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Material{}, err
	}
	if material == nil {
		return domain.Material{}, domain.ErrNotFound
	}

	if req.Name != nil {
		material.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		material.Description = strings.TrimSpace(*req.Description)
	}
	if req.Color != nil {
		material.Color = strings.TrimSpace(*req.Color)
	}
	if req.ImageURL != nil {
		material.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	material.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, material); err != nil {
		return domain.Material{}, err
	}
	return *material, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) List(ctx context.Context, kind domain.Kind) ([]domain.Material, error) {
	kind, err := domain.ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, s.db, kind)
	if err != nil {
		return nil, err
	}

	materials := make([]domain.Material, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		materials = append(materials, *item)
	}
	return materials, nil
}

func (s *Service) GetByCode(ctx context.Context, kind domain.Kind, code string) (domain.Material, error) {
	kind, err := domain.ParseKind(string(kind))
	if err != nil {
		return domain.Material{}, err
	}

	material, err := s.repo.FindByCode(ctx, s.db, kind, strings.TrimSpace(code))
	if err != nil {
		return domain.Material{}, err
	}
	if material == nil {
		return domain.Material{}, domain.ErrNotFound
	}
	return *material, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
