package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"servisku/pkg/utils"
)

// RunMigrations menjalankan goose migrations saat startup.
// Pakai database/sql + lib/pq khusus untuk goose; query runtime tetap lewat pgx.
func RunMigrations(config utils.DatabaseConfig) error {
	dsn := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, config.Port)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db error: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping db error: %w", err)
	}

	if err := goose.Up(db, config.MigrationsDir); err != nil {
		return fmt.Errorf("goose up error: %w", err)
	}

	return nil
}
