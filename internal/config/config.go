package config

import "os"

type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	MigrationsPath string
}

func Load() Config {
	addr := os.Getenv("STORE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	migrations := os.Getenv("MIGRATIONS_PATH")
	if migrations == "" {
		migrations = "./migrations"
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		MigrationsPath: migrations,
	}
}
