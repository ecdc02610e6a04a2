package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"mediscan_backend/internal/config"
	"mediscan_backend/internal/feature/importer/usecase"
	medicineadapters "mediscan_backend/internal/feature/medicines/adapters"
	"mediscan_backend/internal/platform/cache"
	platformdb "mediscan_backend/internal/platform/db"
	platformredis "mediscan_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	path := cfg.CSVPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open CSV:", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Println("[ERROR] Failed to close CSV file:", err)
		}
	}()

	db := platformdb.OpenDB()
	medicineRepo := medicineadapters.NewMedicineRepository(db)

	// 全行置換後にキャッシュ済みエントリを破棄するためキャッシュ層を通す。
	// Redisが無い環境ではそのままDBのみで動く
	rdb, err := platformredis.NewRedisClient()
	if err != nil {
		log.Println("[WARN] Redis unavailable. Skipping cache invalidation.")
		rdb = nil
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}
	cachedRepo := cache.NewCachingMedicineRepository(rdb, 0, medicineRepo, "medicines")
	uc := usecase.NewImportUsecase(cachedRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := uc.ImportCSV(ctx, f)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("import ok: %d medicines", count)
}
