package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/askelan/quizd/internal/trivia"
)

// Config holds the server-level settings read from the environment.
// LLM provider settings live in the llm package; this covers everything
// else the daemon needs.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string

	// DBPath is the sqlite database file. Empty means the default
	// per-user data path.
	DBPath string

	// BankSize bounds the in-memory fallback question bank.
	BankSize int

	// DefaultPlayer is the player id used when a submission does not
	// name one.
	DefaultPlayer string

	// CORSOrigins are the origins allowed to call the API from a
	// browser.
	CORSOrigins []string

	// GenSchema switches question generation to structured JSON output
	// instead of labeled text.
	GenSchema bool
}

// FromEnv reads the configuration from QUIZD_* environment variables,
// applying defaults for anything unset.
func FromEnv() Config {
	return Config{
		HTTPAddr:      envOr("QUIZD_ADDR", ":8080"),
		DBPath:        os.Getenv("QUIZD_DB"),
		BankSize:      envInt("QUIZD_BANK_SIZE", trivia.DefaultStoreSize),
		DefaultPlayer: envOr("QUIZD_DEFAULT_PLAYER", trivia.DefaultPlayerID),
		CORSOrigins:   csvOr("QUIZD_CORS_ORIGINS", "http://localhost:3000"),
		GenSchema:     envBool("QUIZD_GEN_SCHEMA", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := os.Getenv(k)
	if v == "" {
		v = def
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
