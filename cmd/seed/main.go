package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/settingsrepo"
	"marketplace/internal/seed"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	file := flag.String("file", "", "fixtures YAML file; the bundled demo data is used when empty")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	configs := cmd.LoadConfig()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "marketplace-seed").Logger()

	var src io.Reader = bytes.NewReader(seed.DefaultFixtures())
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("failed to open fixtures: %v", err)
		}
		defer f.Close()
		src = f
	}

	fixtures, err := seed.Parse(src)
	if err != nil {
		log.Fatalf("failed to parse fixtures: %v", err)
	}
	data, err := fixtures.Build(time.Now().UTC())
	if err != nil {
		log.Fatalf("invalid fixtures: %v", err)
	}

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	seeder := seed.NewSeeder(
		postgres.NewGormUnitOfWorkFactory(gormDB),
		settingsrepo.NewGormSettingsRepository(gormDB),
		logger,
	)
	if err := seeder.Apply(context.Background(), data); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
}
