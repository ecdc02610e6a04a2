package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	detectionhandler "mediscan_backend/internal/feature/detection/transport/handler"
	medicinehandler "mediscan_backend/internal/feature/medicines/transport/handler"
	platformhandler "mediscan_backend/internal/platform/http/handler"
	"mediscan_backend/internal/platform/metrics"
)

func NewRouter(predict *detectionhandler.PredictHandler,
	medicine *medicinehandler.MedicineHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのスキャンページから叩かれるためCORSを許可
	r.Use(cors.Default())
	r.Use(metrics.Middleware())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// Prometheusスクレイプ用
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// 検出結果 → 薬剤情報 + 年齢別アドバイス
		api.POST("/predict", predict.Predict)
		// 参照データの閲覧
		api.GET("/medicines", medicine.List)
		api.GET("/medicine/:id", medicine.GetByID)
	}

	return r
}
