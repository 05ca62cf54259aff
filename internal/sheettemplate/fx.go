package sheettemplate

import (
	"github.com/jaipurwood/prodsheet/internal/sheettemplate/repository"
	"github.com/jaipurwood/prodsheet/internal/sheettemplate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sheettemplate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
