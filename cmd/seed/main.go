package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktrack/internal/auth"
	"tasktrack/internal/config"
	"tasktrack/internal/db"
	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/repository"
	"tasktrack/internal/service"
)

var sampleToDos = []struct {
	content  string
	complete bool
}{
	{content: "Read the API docs at /swagger/index.html"},
	{content: "Create a to-do of your own"},
	{content: "Mark this one incomplete again", complete: true},
	{content: "Log in with the demo account", complete: true},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewPasswordHasher(auth.BcryptCost), auth.NewTokenService(cfg.JWTSecret))
	todoService := service.NewToDoService(repository.NewToDoRepository(gormDB))
	ctx := context.Background()

	ownerID, created, err := seedUser(ctx, userRepo, authService, cfg)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	if !created {
		log.Printf("User %s already exists, skipping to-dos", cfg.SeedEmail)
		return
	}

	count, err := seedToDos(ctx, todoService, ownerID)
	if err != nil {
		log.Fatalf("Failed to seed to-dos: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - User: %s", cfg.SeedEmail)
	log.Printf("  - To-dos created: %d", count)
}

// seedUser registers the demo user unless an account with that email exists.
func seedUser(ctx context.Context, users repository.UserRepository, authService service.AuthService, cfg *config.Config) (uuid.UUID, bool, error) {
	existing, err := users.FindByEmail(ctx, cfg.SeedEmail)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("error checking user %s: %w", cfg.SeedEmail, err)
	}

	_, user, err := authService.Register(ctx, cfg.SeedName, cfg.SeedEmail, cfg.SeedPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("error creating user %s: %w", cfg.SeedEmail, err)
	}
	return user.ID, true, nil
}

// seedToDos creates the sample to-dos for ownerID.
func seedToDos(ctx context.Context, todos service.ToDoService, ownerID uuid.UUID) (int, error) {
	for i, sample := range sampleToDos {
		todo, err := todos.Create(ctx, ownerID, sample.content)
		if err != nil {
			return i, fmt.Errorf("error creating to-do %q: %w", sample.content, err)
		}
		if sample.complete {
			if _, err := todos.MarkComplete(ctx, ownerID, todo.ID); err != nil {
				return i, fmt.Errorf("error completing to-do %q: %w", sample.content, err)
			}
		}
	}
	return len(sampleToDos), nil
}
