// Command createowner seeds the first owner account so the API has a
// login to bootstrap from.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/mwale-dev/shopledger/internal/modules/user"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	username := flag.String("username", "", "owner login username")
	password := flag.String("password", "", "owner login password")
	name := flag.String("name", "Owner", "display name")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Error("both -username and -password are required")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using process environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	repo := user.NewPostgresRepository(db)

	if _, err := repo.GetByUsername(ctx, *username); err == nil {
		log.Error("user with this username already exists", "username", *username)
		os.Exit(1)
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Error("lookup user", "err", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("hash password", "err", err)
		os.Exit(1)
	}

	owner := &user.User{
		EmployeeID:   "OWNER",
		Name:         *name,
		Role:         user.RoleOwner,
		Username:     *username,
		PasswordHash: string(hash),
	}
	if err := repo.Create(ctx, owner); err != nil {
		log.Error("create owner", "err", err)
		os.Exit(1)
	}
	log.Info("owner account created", "username", *username, "id", owner.ID)
}
