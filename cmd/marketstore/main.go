package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/repositories"
	"github.com/campusmarket/marketstore/internal/services"
	"github.com/campusmarket/marketstore/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the tool
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// marketstore bootstraps a marketplace document store: it opens the
// configured backend, installs the seed catalog on first run, and reports the
// collection counts. One process corresponds to one browsing context; two
// processes against the same backend are not coordinated.
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting marketstore version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds everything parseConfig reads from the environment.
type config struct {
	logLevel string
	backend  string

	fileDir string

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	mongoURI        string
	mongoDB         string
	mongoCollection string

	authDelay time.Duration
}

// parseConfig loads environment variables from a file and returns the
// storage backend selection plus per-backend settings.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.backend = getEnv("STORAGE_BACKEND", "file")

	// File backend
	cfg.fileDir = getEnv("STORAGE_FILE_DIR", "data")

	// Redis backend
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// PostgreSQL backend
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// MongoDB backend
	cfg.mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.mongoDB = getEnv("MONGO_DB", "marketplace")
	cfg.mongoCollection = getEnv("MONGO_COLLECTION", "documents")

	// Simulated auth latency
	var delayMs int
	if delayMs, err = strconv.Atoi(getEnv("AUTH_DELAY_MS", "1000")); err != nil {
		return
	}
	cfg.authDelay = time.Duration(delayMs) * time.Millisecond

	return
}

// openStorage builds the backend named by the config.
func openStorage(ctx context.Context, cfg config) (storage.Storage, error) {
	switch cfg.backend {
	case "memory":
		return storage.NewMemory(), nil

	case "file":
		return storage.NewFile(cfg.fileDir)

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return storage.NewRedis(rdb), nil

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.pgMaxOpenConns)
		db.SetMaxIdleConns(cfg.pgMaxIdleConns)

		pg := storage.NewPostgres(db)
		if err := pg.Bootstrap(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return pg, nil

	case "mongo":
		client, err := storage.NewMongoClient(cfg.mongoURI)
		if err != nil {
			return nil, err
		}
		return storage.NewMongo(client, cfg.mongoDB, cfg.mongoCollection), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.backend)
}

// run initializes the logger, opens the backend, wires the stores, seeds the
// catalog, and reports what the store holds.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Log.Infof("Storage backend %q ready", cfg.backend)

	userRepo := repositories.NewUserRepository(store)
	sessionRepo := repositories.NewSessionRepository(store)
	productRepo := repositories.NewProductRepository(store)
	messageRepo := repositories.NewMessageRepository(store)

	authService := services.NewAuthService(userRepo, sessionRepo, cfg.authDelay)
	productService := services.NewProductService(productRepo)
	messageService := services.NewMessageService(messageRepo)
	adminService := services.NewAdminService(userRepo, productRepo)

	if err := productService.Bootstrap(ctx); err != nil {
		return err
	}

	if session, err := authService.CurrentUser(ctx); err != nil {
		return err
	} else if session != nil {
		unread, err := messageService.UnreadCount(ctx, *session)
		if err != nil {
			return err
		}
		logger.Log.Infow("session restored", "user_id", session.ID, "role", session.Role, "unread", unread)
	} else {
		logger.Log.Info("no stored session")
	}

	stats, err := adminService.Stats(ctx)
	if err != nil {
		return err
	}
	logger.Log.Infow("marketplace store ready",
		"users", stats.TotalUsers,
		"active_listings", stats.ActiveListings,
		"sold_items", stats.SoldItems,
		"revenue", stats.TotalRevenue,
	)
	return nil
}
