package product

import (
	"github.com/jaipurwood/prodsheet/internal/product/repository"
	"github.com/jaipurwood/prodsheet/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
