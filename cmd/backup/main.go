// Command backup uploads the current snapshot to GCS_BUCKET under snapshots/.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/config"
	"github.com/oksasatya/go-jobboard/internal/infrastructure/storage"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-backup", cfg.Env, cfg.LogLevel)
	if cfg.GCSBucket == "" {
		log.Fatal("GCS_BUCKET not configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshots, closeRepo, err := storage.OpenSnapshots(ctx, cfg, logger, storage.Options{AppName: cfg.AppName + "-backup"})
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeRepo()

	snap, err := snapshots.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load snapshot: %v", err)
	}
	b, err := json.Marshal(snap)
	if err != nil {
		log.Fatalf("failed to encode snapshot: %v", err)
	}

	gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		log.Fatalf("failed to init GCS client: %v", err)
	}
	defer func() { _ = gcsClient.Close() }()

	object := fmt.Sprintf("snapshots/%s-%s.json", time.Now().UTC().Format("20060102T150405Z"), uuid.NewString())
	url, err := helpers.UploadObject(ctx, gcsClient, cfg.GCSBucket, object, "application/json", map[string]string{
		"storage-driver": cfg.StorageDriver,
		"users":          strconv.Itoa(len(snap.Users)),
		"posts":          strconv.Itoa(len(snap.Posts)),
	}, bytes.NewReader(b))
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}
	helpers.LogInfo(logger, "snapshot uploaded", logrus.Fields{"object": url, "users": len(snap.Users), "posts": len(snap.Posts)})
}
