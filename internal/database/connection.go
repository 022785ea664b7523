// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agrikom/agrimarket-backend/internal/config"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// Connect opens the remote record store. It must only be called when
// cfg.Configured() is true; callers without a remote configuration skip
// straight to the local record store.
func Connect(cfg config.RemoteConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	if cfg.LogLevel == "info" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping remote store: %w", err)
	}

	logrus.Info("Remote store connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing remote store connection")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running remote store migrations...")

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.LikedProducts{},
		&models.Order{},
		&models.Article{},
		&models.Discussion{},
		&models.Comment{},
		&models.ChatMessage{},
		&models.RevenueEntry{},
		&models.RobotStatus{},
		&models.RobotActivity{},
		&models.RobotLog{},
		&models.UserSettings{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Remote store migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_role_status ON users(role, status)",
		"CREATE INDEX IF NOT EXISTS idx_products_owner_status ON products(owner_key, status)",
		"CREATE INDEX IF NOT EXISTS idx_products_updated_at ON products(updated_at)",
		"CREATE INDEX IF NOT EXISTS idx_orders_seller_status ON orders(seller_key, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_key, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_articles_status_created ON educational_articles(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_chat_conversation ON chat_messages(conversation_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_comments_discussion ON forum_comments(discussion_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_owner ON notifications(owner_key, created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// WithTransaction runs fn inside a transaction, rolling back on error.
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
