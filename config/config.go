package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the bot, the redirect
// server and the store.
type Config struct {
	BotToken  string
	AdminID   int64  // 0 disables the admin commands
	AdminKey  string
	Hostname  string // scheme-prefixed, no trailing slash
	Port      string
	RefLinks  []string
	DBPath    string
	StatsCron string // optional digest schedule, empty disables it
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present, then the environment. Returns an error on
// missing or malformed required keys.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		BotToken:  os.Getenv("BOT_TOKEN"),
		AdminKey:  os.Getenv("ADMIN_KEY"),
		Hostname:  strings.TrimRight(os.Getenv("HOSTNAME"), "/"),
		Port:      getEnv("PORT", "3000"),
		DBPath:    getEnv("DB_PATH", "data.db"),
		StatsCron: os.Getenv("STATS_CRON"),
	}

	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("BOT_TOKEN is required")
	}
	if !strings.HasPrefix(cfg.Hostname, "http://") && !strings.HasPrefix(cfg.Hostname, "https://") {
		return Config{}, fmt.Errorf("HOSTNAME must start with http:// or https://")
	}

	if raw := os.Getenv("ADMIN_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("ADMIN_ID must be an integer: %v", err)
		}
		cfg.AdminID = id
	}

	for _, link := range strings.Split(os.Getenv("REF_LINKS"), ",") {
		if link = strings.TrimSpace(link); link != "" {
			cfg.RefLinks = append(cfg.RefLinks, link)
		}
	}

	return cfg, nil
}
