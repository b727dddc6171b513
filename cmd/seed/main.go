package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"trailpack/internal/api/services"
	"trailpack/internal/config"
	"trailpack/internal/domain"
	"trailpack/internal/repository"
	"trailpack/internal/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	username := flag.String("username", "hiker", "Username of the demo account")
	email := flag.String("email", "hiker@example.com", "Email of the demo account")
	password := flag.String("password", "password", "Password of the demo account")
	flag.Parse()

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	log.Println("Starting seed process...")

	userRepo := repository.NewUserRepository(db.DB())

	user, err := userRepo.FindByUsername(*username)
	switch {
	case err == nil:
		log.Printf("User '%s' already exists, reusing", user.Username)
	case errors.Is(err, repository.ErrUserNotFound):
		hashedPassword, herr := util.HashPassword(*password)
		if herr != nil {
			log.Fatalf("Failed to hash password: %v", herr)
		}

		user = &domain.User{
			Username: *username,
			Email:    *email,
			Password: hashedPassword,
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		log.Printf("Created user: %s (%s)", user.Username, user.Email)
	default:
		log.Fatalf("Failed to look up user: %v", err)
	}

	listService := services.NewListService(db.DB())
	list, err := listService.EnsureDefaultList(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed default list: %v", err)
	}
	log.Printf("Default list ready: %s (%s)", list.Name, list.ID)

	log.Println("Seed process completed!")
}
