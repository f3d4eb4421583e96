package config

import "os"

// Config carries everything the two services read from the environment.
// The cmd entrypoints call godotenv.Load() first so a local .env works too.
type Config struct {
	ShopAddr     string
	AdminAddr    string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	AdminPINHash string
	CORSOrigins  string
}

func Load() Config {
	return Config{
		ShopAddr:     getenv("SHOP_ADDR", ":8000"),
		AdminAddr:    getenv("ADMIN_ADDR", ":8001"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AdminPINHash: os.Getenv("ADMIN_PIN_HASH"),
		CORSOrigins:  getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
