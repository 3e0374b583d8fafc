package database

import (
	"NoteAPI/config"
	"NoteAPI/pkg/log"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化 Postgres 连接池，连接失败直接返回错误
func NewDB(conf *config.Config) (*gorm.DB, func(), error) {
	if conf.Database.Dsn == "" {
		return nil, nil, errors.New("database dsn is empty")
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if conf.Debug() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(conf.Database.Dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetMaxOpenConns(conf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.Database.Lifetime())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		log.L.Error("failed to ping database", zap.Error(err))
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	log.L.Info("connect database success")
	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.L.Error("close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}
