package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fittrack/logger"
	"fittrack/storage"
	"fittrack/storage/memory"
	pgstore "fittrack/storage/postgres"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port    string
	GinMode string
	Env     string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int

	AWSRegion      string
	S3Bucket       string
	CloudFrontURL  string
	SNSPlatformARN string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "debug"),
		Env:     getenv("ENV", "development"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "fittrack"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CORSOrigins: splitList(getenv("CORS_ORIGIN", "*")),

		AWSRegion:      getenv("AWS_REGION", "ap-south-1"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		CloudFrontURL:  os.Getenv("CLOUDFRONT_URL"),
		SNSPlatformARN: os.Getenv("SNS_FCM_ARN"),
	}

	ttlHours, err := intEnv("JWT_TTL_HOURS", 72)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour
	if cfg.RateLimitRPS, err = floatEnv("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverMemory {
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL_HOURS must be positive")
	}
	return nil
}

// DSN returns DATABASE_URL when set, else a key/value DSN from the DB_* parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// UploadsEnabled reports whether profile pictures can go to S3.
func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != "" && c.CloudFrontURL != ""
}

// PushEnabled reports whether SNS push is configured.
func (c *Config) PushEnabled() bool {
	return c.SNSPlatformARN != ""
}

// OpenStore opens and migrates the configured store.
func OpenStore(c *Config) (storage.Store, error) {
	if c.DBDriver == DriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.New(), nil
	}

	db, err := OpenDB(c)
	if err != nil {
		return nil, err
	}
	store := pgstore.New(db)
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("database connected", zap.String("host", c.DBHost), zap.String("name", c.DBName))
	return store, nil
}

func OpenDB(c *Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if c.Env == "production" {
		level = gormlogger.Error
	}
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("retrieve sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func floatEnv(k string, def float64) (float64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
