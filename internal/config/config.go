package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port      string // サーバーポート
	JWTSecret string // JWT署名シークレット
	GoEnv     string // development/production
	FEURL     string // フロントURL（CORSで使う）
}

// Loadは環境変数から設定を読む。開発用のデフォルトあり。
func Load() Config {
	return Config{
		Port:      getenv("PORT", "3000"),
		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),
		GoEnv:     getenv("GO_ENV", "development"),
		FEURL:     os.Getenv("FE_URL"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
