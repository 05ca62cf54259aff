package service

import (
	"context"

	"github.com/jaipurwood/prodsheet/internal/dashboard/domain"
	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
	factorydomain "github.com/jaipurwood/prodsheet/internal/factory/domain"
	orderdomain "github.com/jaipurwood/prodsheet/internal/order/domain"
	productdomain "github.com/jaipurwood/prodsheet/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentExportCount = 10

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Orders  orderdomain.Repository
	Exports exportdomain.Service
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	orders  orderdomain.Repository
	exports exportdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("dashboard.service"),
		orders:  p.Orders,
		exports: p.Exports,
	}
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	byStatus, err := s.orders.CountByStatus(ctx, s.db)
	if err != nil {
		return domain.Stats{}, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	var products int64
	if err := s.db.WithContext(ctx).Model(&productdomain.Product{}).Count(&products).Error; err != nil {
		return domain.Stats{}, err
	}

	var factories int64
	if err := s.db.WithContext(ctx).Model(&factorydomain.Factory{}).Count(&factories).Error; err != nil {
		return domain.Stats{}, err
	}

	recent, err := s.exports.List(ctx, exportdomain.ListRequest{PageSize: recentExportCount})
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		TotalOrders:    total,
		OrdersByStatus: byStatus,
		TotalProducts:  products,
		TotalFactories: factories,
		RecentExports:  recent.Records,
	}, nil
}
