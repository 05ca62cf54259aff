package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/config"
	"github.com/jaipurwood/prodsheet/internal/migration"
	"github.com/jaipurwood/prodsheet/internal/server"
	"github.com/jaipurwood/prodsheet/pkg/db"
	"github.com/jaipurwood/prodsheet/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		// Schema and bootstrap data before the server accepts traffic
		migration.Module,
		migration.SeedModule,

		// HTTP surface plus all the feature modules it serves
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
