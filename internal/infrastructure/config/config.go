package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DatabasePath string

	// Location governs every calendar boundary in the system: "today",
	// week starts, and the Sunday check for weekly tests.
	Location *time.Location

	// Reminder sweep
	ReminderInterval time.Duration
	ReminderWorkers  int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:    mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:  mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatabasePath:     getenvDefault("DATABASE_PATH", "steadypath.db"),
		Location:         mustLoadLocation(getenvDefault("TIMEZONE", "UTC")),
		ReminderInterval: getenvDuration("REMINDER_INTERVAL", time.Minute),
		ReminderWorkers:  getenvInt("REMINDER_WORKERS", 4),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("config: TIMEZONE=%q is not a valid location: %v", name, err)
	}
	return loc
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}
