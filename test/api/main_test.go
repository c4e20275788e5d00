package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"testing"

	"github.com/eskrenkovic/battleship-go/internal/config"
	"github.com/eskrenkovic/battleship-go/internal/modules/tests"
	"github.com/eskrenkovic/battleship-go/internal/server"

	"github.com/docker/go-connections/nat"
	"github.com/joho/godotenv"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type IntegrationTestFixture struct {
	client  *http.Client
	baseURL string
}

var fixture = IntegrationTestFixture{}

func TestMain(m *testing.M) {
	rootPath := "../../"
	if err := os.Setenv(config.RootPathEnv, rootPath); err != nil {
		log.Fatal(err)
	}

	if err := godotenv.Load(path.Join(rootPath, "config.env")); err != nil {
		log.Fatal(err)
	}

	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	conf.Logger = zap.NewNop()

	pgPort := nat.Port(fmt.Sprintf("%d", 5432))
	waitStrategies := map[string]wait.Strategy{
		"bsl-postgres": wait.ForSQL(pgPort, "postgres", func(string, nat.Port) string {
			return conf.DatabaseURL
		}),
	}

	ctx := context.Background()

	f, err := tests.NewLocalTestFixture(path.Join(rootPath, "docker-compose.yml"), waitStrategies)
	if err != nil {
		log.Fatal(err)
	}

	defer func() {
		if err := f.Stop(ctx); err != nil {
			log.Fatal(err)
		}
	}()

	if err := f.Start(ctx); err != nil {
		log.Fatal(err)
	}

	fixture.client = &http.Client{}
	fixture.baseURL = fmt.Sprintf("http://localhost:%d", conf.Port)

	srv, err := server.NewHTTPServer(conf)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal(err)
		}
	}()

	_ = m.Run()
}
