// Package main runs the gym MCP server over stdio.
// The same tools are mounted on the API server at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymmanager/internal/cache"
	"github.com/2beens/gymmanager/internal/config"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/managers"
	gymmcp "github.com/2beens/gymmanager/internal/mcp"
	"github.com/2beens/gymmanager/internal/members"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatalf("db driver: %v", err)
	}

	ctx := context.Background()
	gymDB, err := db.Open(ctx, db.Params{
		Dialect:      dialect,
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		User:         cfg.DBUser,
		Password:     cfg.DBPassword,
		Name:         cfg.DBName,
		MaxOpenConns: 2,
	})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer gymDB.Close()

	// no report cache over stdio
	reportService := managers.NewService(managers.NewRepo(gymDB), cache.NopCache{}, 0, nil)
	server := gymmcp.NewServer(gymmcp.NewDBSchemaRepo(gymDB), members.NewRepo(gymDB), reportService)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
