package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"homefinder/internal/app"
	"homefinder/internal/config"
	"homefinder/internal/database/seeder"
	domprofile "homefinder/internal/domain/profile"
	"homefinder/internal/infrastructure/persistence/postgres"
	"homefinder/internal/pkg/logger"
	ucauth "homefinder/internal/usecase/auth"

	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", "demo@homefinder.local", "demo account email")
	password := flag.String("password", "demo1234", "demo account password")
	fullName := flag.String("full-name", "Demo User", "profile full name; empty skips the profile")
	phone := flag.String("phone", "555-0100", "profile phone number")
	role := flag.String("role", "buyer", "profile role: buyer or seller")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.AppName, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	r, err := domprofile.ParseRole(*role)
	if err != nil {
		lg.Fatal("invalid -role", zap.String("role", *role))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to init container", zap.Error(err))
	}
	defer func() { _ = c.Close() }()

	runner := seeder.Runner{
		Logger: lg,
		Seeders: []seeder.Seeder{
			seeder.DemoAccount{
				Accounts: ucauth.NewService(postgres.NewUserRepository(c.DB), lg),
				Store:    c.Store,
				Email:    *email,
				Password: *password,
				Profile: domprofile.UserProfile{
					FullName:    strings.TrimSpace(*fullName),
					PhoneNumber: strings.TrimSpace(*phone),
					Role:        r,
				},
			},
		},
	}
	if err := runner.Run(ctx); err != nil {
		lg.Fatal("seed failed", zap.Error(err))
	}
}
