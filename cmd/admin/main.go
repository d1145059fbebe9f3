package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"codeberg.org/bookshelf/server/bookshelf/users"
	"codeberg.org/bookshelf/server/internal/auth"
	"codeberg.org/bookshelf/server/internal/config"
	"codeberg.org/bookshelf/server/internal/logger"
	"codeberg.org/bookshelf/server/internal/storage"
)

// grants the admin role to an existing account and prints a token for it
func main() {
	email := flag.String("email", "", "e-mail of the account to promote")
	tokenOnly := flag.Bool("token-only", false, "print a token without granting the role")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: admin -email someone@example.com [-token-only]")
		os.Exit(2)
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	db, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	repo := users.NewRepository(db, cfg.SignupEnabled)

	user, err := repo.FindByEmail(ctx, *email)
	if err != nil {
		logger.Fatal("failed to find account", "email", *email, "error", err)
	}

	if !*tokenOnly {
		if err := repo.GrantAdmin(ctx, user.ID); err != nil {
			logger.Fatal("failed to grant admin role", "user_id", user.ID, "error", err)
		}

		user.IsAdmin = true
		logger.Info("granted admin role", "user_id", user.ID, "email", user.Email)
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		logger.Fatal("failed to generate token", "error", err)
	}

	fmt.Printf("export BOOKSHELF_TOKEN=%q\n", token)
}
