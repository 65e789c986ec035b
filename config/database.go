package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	db *gorm.DB
)

func GetDB() *gorm.DB {
	return db
}

func init() {
	// Load env from .env for local runs; the scheduler exports the real env.
	godotenv.Load()
}

// ConnectDatabase connects and sets the package DB handle. Call this from the
// command entry point before any pipeline work.
func ConnectDatabase() error {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbName == "" {
		return fmt.Errorf("database config incomplete: DB_HOST=%q DB_NAME=%q", dbHost, dbName)
	}

	network := "tcp"
	address := fmt.Sprintf("%s:%s", dbHost, dbPort)

	// DB_HOST of the form "/cloudsql/<CONNECTION_NAME>" means a Unix domain
	// socket provided by the Cloud SQL Auth Proxy.
	if strings.HasPrefix(dbHost, "/cloudsql/") {
		network = "unix"
		address = dbHost
	}

	databaseConfig := fmt.Sprintf("%s:%s@%s(%s)/%s?parseTime=true",
		dbUser,
		dbPassword,
		network,
		address,
		dbName,
	)

	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		db, err = gorm.Open(mysql.Open(databaseConfig), initConfig())
		if err == nil {
			break
		}
		GetLogger().Warnf("database connect attempt %d failed: %v", attempt, err)
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// A batch job holds one sequential connection; keep the pool tiny.
	if sqlDB, derr := db.DB(); derr == nil && sqlDB != nil {
		sqlDB.SetMaxOpenConns(2)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return nil
}

func initConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	}
}
