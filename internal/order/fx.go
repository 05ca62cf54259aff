package order

import (
	"github.com/jaipurwood/prodsheet/internal/order/repository"
	"github.com/jaipurwood/prodsheet/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
