package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DefaultRpcHttpUrl = "https://api.mainnet-beta.solana.com"
	DefaultUpdateUrl  = "https://openbook-cli.dev/releases/latest/openbook-cli"

	// Depth applied when the caller does not ask for one.
	DefaultBookDepth   = 20
	DefaultReportDepth = 15

	// Decimals assumed for mints we never fetched. Most SPL tokens in
	// this ecosystem use 6.
	AssumedDecimals = 6
)

var (
	RpcHttpUrl    string
	StoreDir      string
	RedisAddr     string
	RedisPassword string
	UpdateUrl     string
)

// InitEnv loads .env when present and fills the config vars. Missing
// variables fall back to usable defaults so a bare invocation works.
func InitEnv() error {
	godotenv.Load()

	RpcHttpUrl = os.Getenv("RPC_HTTP_URL")
	if RpcHttpUrl == "" {
		RpcHttpUrl = DefaultRpcHttpUrl
	}

	StoreDir = os.Getenv("STORE_DIR")
	if StoreDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			StoreDir = "."
		} else {
			StoreDir = filepath.Join(home, ".openbook-cli")
		}
	}

	RedisAddr = os.Getenv("REDIS_ADDR")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	UpdateUrl = os.Getenv("UPDATE_URL")
	if UpdateUrl == "" {
		UpdateUrl = DefaultUpdateUrl
	}

	return nil
}
