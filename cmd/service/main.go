package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal"
	"github.com/2beens/gymmanager/internal/config"
	"github.com/2beens/gymmanager/internal/logging"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	initSchema := flag.Bool("init-schema", false, "create missing tables before serving")
	printVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	versionInfo := lastCommitHash()
	if *printVersion {
		fmt.Println(versionInfo)
		return
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config [%s]: %s\n", *env, err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "gym-manager-api",
	})

	log.Warnf("---->> gym manager api, [%s] environment, version [%s]", cfg.Environment, versionInfo)
	log.Debugf("using db: %s @ %s:%s/%s", cfg.DBDriver, cfg.DBHost, cfg.DBPort, cfg.DBName)
	log.Debugf("report cache: %s, ttl %s", cfg.ReportCache, cfg.ReportCacheTTL)
	warnMissingEnv(cfg)

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: honeycombEnabled,
			InitSchema:              *initSchema,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, shutting down ...")
	server.GracefulShutdown()
}

func warnMissingEnv(cfg *config.Config) {
	if cfg.DBPassword == "" {
		log.Warnln("db password not set, use GYM_DB_PASSWORD env var to set it")
	}
	if cfg.RedisHost != "" && cfg.RedisPassword == "" {
		log.Debugln("redis password not set, GYM_REDIS_PASS is empty")
	}
	if os.Getenv("HONEYCOMB_ENABLED") != "true" {
		log.Debugln("honeycomb tracing disabled")
		return
	}
	if os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}
	if os.Getenv("OTEL_SERVICE_NAME") == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}
}

// lastCommitHash assumes the binary runs from within the repo checkout.
func lastCommitHash() string {
	stdout, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(stdout))
}
