package quotation

import (
	"github.com/jaipurwood/prodsheet/internal/quotation/repository"
	"github.com/jaipurwood/prodsheet/internal/quotation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quotation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
