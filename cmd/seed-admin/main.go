// seed-admin creates a dashboard admin account. Run once against a fresh
// database:
//
//	seed-admin -email admin@example.com -name "Admin" -password 'long-secret'
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/FIKE110/inverta/internal/auth/repository"
	"github.com/FIKE110/inverta/platform/config"
	"github.com/FIKE110/inverta/platform/db"
	"github.com/FIKE110/inverta/platform/logger"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "Admin", "display name")
	password := flag.String("password", "", "password (min 8 characters)")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		panic("usage: seed-admin -email <email> -password <min 8 chars> [-name <name>]")
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.New(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		panic("failed to hash password: " + err.Error())
	}

	repo := repository.New(pool)
	user, err := repo.Create(ctx, repository.CreateUserParams{
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *name,
		Roles:        []string{"admin"},
	})
	if err != nil {
		panic("failed to create admin: " + err.Error())
	}

	log.Info("admin account created", "id", user.ID, "email", user.Email)
}
