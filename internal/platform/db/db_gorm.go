package db

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mediscan_backend/internal/feature/medicines/domain/entity"
)

// DefaultSQLitePath はDB_PATH未設定時に使われるSQLiteファイルのパスです。
const DefaultSQLitePath = "assets/mediweb.db"

// Opener はgorm.Openを抽象化した関数型です。テストでモックに差し替えられます。
type Opener func(dialector gorm.Dialector) (*gorm.DB, error)

// SelectDialector は接続先のDialectorを選択します。
// databaseURLが空でなければPostgreSQL、それ以外はSQLiteファイル
// （sqlitePath、空の場合は DefaultSQLitePath）を使用します。
func SelectDialector(databaseURL, sqlitePath string) gorm.Dialector {
	if databaseURL != "" {
		return postgres.Open(databaseURL)
	}
	if sqlitePath == "" {
		sqlitePath = DefaultSQLitePath
	}
	return sqlite.Open(sqlitePath)
}

// ConnectWithRetry は接続が成功するかタイムアウトするまで3秒間隔でリトライします。
func ConnectWithRetry(dialector gorm.Dialector, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dialector)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, errors.Join(errors.New("DB connect timed out"), err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数から接続先を決めて参照データベースへの接続を開きます。
// RUN_MIGRATIONS=true のときはスキーマのAutoMigrateも実行します。
func OpenDB() *gorm.DB {
	dialector := SelectDialector(os.Getenv("DATABASE_URL"), os.Getenv("DB_PATH"))

	db, err := ConnectWithRetry(dialector, 60*time.Second, func(d gorm.Dialector) (*gorm.DB, error) {
		return gorm.Open(d, &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("DB connect failed after 60s: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&entity.Medicine{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
