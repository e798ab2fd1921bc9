package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:                  getenv("APP_PORT", "8080"),
		DatabaseURL:           must("DATABASE_URL"),
		Env:                   getenv("APP_ENV", "dev"),
		MaxWindowDays:         getenvInt("RESERVATION_MAX_WINDOW_DAYS", 30),
		MaxActiveReservations: getenvInt("RESERVATION_MAX_ACTIVE", 5),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid env value", "key", k, "value", v)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
