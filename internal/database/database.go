package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fibranet/backoffice/internal/config"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conn bundles the database pool and the Redis client. It is constructed once
// at startup and handed to the layers that need it; there are no package-level
// singletons.
type Conn struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// Connect opens the PostgreSQL pool and the Redis client. Connectivity is
// verified immediately; callers are expected to treat an error as fatal and
// not serve traffic against a broken backend.
func Connect(cfg *config.Config) (*Conn, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connectivity check failed: %w", err)
	}

	log.Println("Database connected successfully")

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("Redis connected successfully")

	return &Conn{DB: db, Redis: rdb}, nil
}

func (c *Conn) Close() {
	if sqlDB, err := c.DB.DB(); err == nil {
		sqlDB.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}
