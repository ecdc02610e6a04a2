package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"mediscan_backend/internal/app/router"
	"mediscan_backend/internal/config"
	detectionhandler "mediscan_backend/internal/feature/detection/transport/handler"
	detectionusecase "mediscan_backend/internal/feature/detection/usecase"
	dosageusecase "mediscan_backend/internal/feature/dosage/usecase"
	medicineadapters "mediscan_backend/internal/feature/medicines/adapters"
	medicinehandler "mediscan_backend/internal/feature/medicines/transport/handler"
	medicineusecase "mediscan_backend/internal/feature/medicines/usecase"
	"mediscan_backend/internal/platform/cache"
	platformdb "mediscan_backend/internal/platform/db"
	platformredis "mediscan_backend/internal/platform/redis"
)

func main() {
	// .envはローカル開発用。無くてもよい
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	medicineRepo := medicineadapters.NewMedicineRepository(db)

	// Redisキャッシュでラップ（参照データはデプロイ内で不変なのでTTLなし）
	cachedMedicineRepo := cache.NewCachingMedicineRepository(rdb, 0, medicineRepo, "medicines")

	// Usecase
	dosageUC := dosageusecase.NewDosageUsecase()
	medicineUC := medicineusecase.NewMedicineUsecase(cachedMedicineRepo)
	resolveUC := detectionusecase.NewResolveUsecase(
		cachedMedicineRepo, dosageUC, detectionusecase.DefaultClassLabelMap())

	// Handler
	medicineH := medicinehandler.NewMedicineHandler(medicineUC)
	predictH := detectionhandler.NewPredictHandler(resolveUC)

	// ルータ生成
	router := router.NewRouter(predictH, medicineH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
