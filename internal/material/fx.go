package material

import (
	"github.com/jaipurwood/prodsheet/internal/material/repository"
	"github.com/jaipurwood/prodsheet/internal/material/service"
	"go.uber.org/fx"
)

var Module = fx.Module("material.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
