package factory

import (
	"github.com/jaipurwood/prodsheet/internal/factory/repository"
	"github.com/jaipurwood/prodsheet/internal/factory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("factory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
