package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-29") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.logLevel != "info" || cfg.backend != "file" || cfg.fileDir != "data" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.logLevel, cfg.backend, cfg.fileDir)
	}
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" ||
		cfg.redisPoolSize != 10 || cfg.redisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" ||
		cfg.pgDB != "database" || cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.mongoURI != "mongodb://localhost:27017" || cfg.mongoDB != "marketplace" || cfg.mongoCollection != "documents" {
		t.Errorf("unexpected mongo config")
	}
	if cfg.authDelay != time.Second {
		t.Errorf("unexpected auth delay: %v", cfg.authDelay)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("STORAGE_BACKEND", "redis")
	os.Setenv("STORAGE_FILE_DIR", "/var/lib/marketstore")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("MONGO_URI", "mongodb://mongo.example.com:27017")
	os.Setenv("MONGO_DB", "campus")
	os.Setenv("MONGO_COLLECTION", "docs")

	os.Setenv("AUTH_DELAY_MS", "0")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.logLevel != "debug" || cfg.backend != "redis" || cfg.fileDir != "/var/lib/marketstore" {
		t.Errorf("unexpected app config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 ||
		cfg.redisPassword != "redispass" || cfg.redisPoolSize != 15 || cfg.redisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" ||
		cfg.pgDB != "mydb" || cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.mongoURI != "mongodb://mongo.example.com:27017" || cfg.mongoDB != "campus" || cfg.mongoCollection != "docs" {
		t.Errorf("unexpected mongo config")
	}
	if cfg.authDelay != 0 {
		t.Errorf("unexpected auth delay: %v", cfg.authDelay)
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("REDIS_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Fatal("expected error for invalid REDIS_PORT")
	}
}

func TestOpenStorage_Memory(t *testing.T) {
	store, err := openStorage(context.Background(), config{backend: "memory"})
	if err != nil {
		t.Fatalf("openStorage returned error: %v", err)
	}
	defer store.Close()

	if err := store.Set(context.Background(), "k", []byte(`{}`)); err != nil {
		t.Errorf("store not usable: %v", err)
	}
}

func TestOpenStorage_File(t *testing.T) {
	store, err := openStorage(context.Background(), config{backend: "file", fileDir: t.TempDir()})
	if err != nil {
		t.Fatalf("openStorage returned error: %v", err)
	}
	defer store.Close()
}

func TestOpenStorage_Unknown(t *testing.T) {
	if _, err := openStorage(context.Background(), config{backend: "cassandra"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestRun_Success(t *testing.T) {
	resetEnv()

	cfg := config{
		logLevel: "debug",
		backend:  "file",
		fileDir:  t.TempDir(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// First run seeds the catalog, the second finds it already in place.
	if err := run(ctx, cfg); err != nil {
		t.Fatalf("expected run to succeed, got error: %v", err)
	}
	if err := run(ctx, cfg); err != nil {
		t.Fatalf("expected second run to succeed, got error: %v", err)
	}
}
