package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"go-stock-ledger/internal/config"
	"go-stock-ledger/internal/repository"
	"go-stock-ledger/internal/service"
	"go-stock-ledger/pkg/database"

	"github.com/sirupsen/logrus"
)

func main() {
	username := flag.String("username", "", "username of the new account")
	password := flag.String("password", "", "password of the new account (or STOCK_LEDGER_PASSWORD)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("STOCK_LEDGER_PASSWORD")
	}

	// 1. Load Env
	cfg := config.LoadConfig()
	cfg.SetupLogger()

	// 2. Setup Database
	db, err := database.Connect(cfg.Database())
	if err != nil {
		logrus.Fatalf("❌ Failed to connect to DB: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("❌ Migration failed: %v", err)
	}

	// 3. Register
	auth := service.NewAuthService(repository.NewUserRepo(db), cfg.BcryptCost)
	identity, err := auth.Register(context.Background(), *username, *password)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		flag.Usage()
		logrus.Fatalf("❌ %v", err)
	case errors.Is(err, service.ErrDuplicateUsername):
		logrus.Fatalf("❌ User %q already exists", *username)
	case err != nil:
		logrus.Fatalf("❌ Failed to register user: %v", err)
	}

	logrus.Infof("✅ User created: %s (id %d)", identity.Username, identity.UserID)
}
