package export

import (
	"github.com/jaipurwood/prodsheet/internal/export/repository"
	"github.com/jaipurwood/prodsheet/internal/export/service"
	"go.uber.org/fx"
)

var Module = fx.Module("export.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
