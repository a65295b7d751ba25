package config

import (
	"fmt"
	"os"
	"strconv"
)

// デフォルトの管理者通知先。設定行にもENVにも無いときの最後のフォールバック。
const DefaultAdminEmail = "admin@metahair.com"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あればDSNとして最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret string // 管理者セッショントークンの署名シークレット

	PaystackSecretKey string // 決済検証用。無ければ検証APIは500を返す
	ResendAPIKey      string // 無ければメール送信はスキップ
	EmailFrom         string // 送信元アドレス
	AdminEmail        string // 管理者通知先のENVフォールバック
	AdminPin          string // 設定行が無いときの初期PIN（初回起動のみ使用）
	AppURL            string // 管理画面リンクなどで使う

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "metahair"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		EmailFrom:         getenv("EMAIL_FROM", "orders@metahair.com"),
		AdminEmail:        getenv("ADMIN_EMAIL", DefaultAdminEmail),
		AdminPin:          getenv("ADMIN_PIN", "1234"),
		AppURL:            os.Getenv("APP_URL"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
