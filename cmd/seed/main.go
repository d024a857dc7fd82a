// Command seed fills the configured snapshot store with two demo users, a watch relation and a job.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-jobboard/config"
	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/internal/infrastructure/storage"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
)

func main() {
	reset := flag.Bool("reset", false, "clear the store before seeding")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	snapshots, closeRepo, err := storage.OpenSnapshots(ctx, cfg, logger, storage.Options{Migrate: true, AppName: cfg.AppName + "-seed"})
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeRepo()

	store, err := application.Open(ctx,
		snapshots,
		helpers.NewJWTManager(cfg.JWTSecret),
		logger,
		application.WithPasswordHashing(cfg.PasswordHashing),
	)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	if *reset {
		if err := store.Reset(ctx); err != nil {
			log.Fatalf("failed to reset store: %v", err)
		}
	}

	betty, err := registerOrLogin(ctx, store, "betty@email.com", "cardigan", "Betty")
	if err != nil {
		log.Fatalf("failed to seed betty: %v", err)
	}
	james, err := registerOrLogin(ctx, store, "james@email.com", "betty", "James")
	if err != nil {
		log.Fatalf("failed to seed james: %v", err)
	}
	fmt.Printf("seeded users: betty=%d james=%d\n", betty.UserID, james.UserID)

	on := true
	if err := store.WatchUser(ctx, strconv.Itoa(james.UserID), strconv.Itoa(betty.UserID), &on); err != nil {
		log.Fatalf("failed to seed watch: %v", err)
	}

	title, image := "Hello Kitty Director", ""
	start, desc := "2011-10-05T14:48:00.000Z", "Dedicated technical wizard with a passion and interest in human relationships"
	id, err := store.PostJob(ctx, strconv.Itoa(betty.UserID), application.JobInput{Image: &image, Title: &title, Start: &start, Description: &desc})
	if err != nil {
		log.Fatalf("failed to seed job: %v", err)
	}
	fmt.Printf("seeded job %s; james watches betty\n", id)
}

func registerOrLogin(ctx context.Context, store *application.Store, email, password, name string) (*entity.AuthResult, error) {
	res, err := store.Register(ctx, email, password, name)
	if err == nil {
		return res, nil
	}
	if !application.IsInputError(err) {
		return nil, err
	}
	return store.Login(ctx, email, password)
}
