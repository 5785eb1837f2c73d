// Package database opens the catalog store and materializes its schema.
//
// Two backends are supported: SQLite (the default, a single file next to the
// binary) and PostgreSQL through lib/pq.
package database

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/catalog-app/catalog/config"
	"github.com/catalog-app/catalog/logger"
	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the store described by cfg and pings it.
func Open(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.NewGormLogger(log),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		closePool(dialector, db)
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		closePool(dialector, db)
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("connected to the database")

	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DBDSN), nil
	case config.DriverPostgres:
		conn, err := sql.Open("postgres", cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		return postgres.New(postgres.Config{Conn: conn}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// closePool releases whatever pool a failed Open left behind: the lib/pq
// handle given to the postgres dialector, or the one gorm opened itself.
func closePool(dialector gorm.Dialector, db *gorm.DB) {
	if pg, ok := dialector.(*postgres.Dialector); ok && pg.Conn != nil {
		if c, ok := pg.Conn.(io.Closer); ok {
			_ = c.Close()
		}
		return
	}
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
