package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
)

//go:embed migrations/postgres/*.sql migrations/mysql/*.sql
var migrationsFS embed.FS

// RunMigrations 드라이버별 마이그레이션을 끝까지 적용한다
func RunMigrations(db *sql.DB, driver string, logger *zap.Logger) error {
	dir := "migrations/" + driver
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("마이그레이션 파일 로드 실패: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case config.DriverMySQL:
		target, err = mysql.WithInstance(db, &mysql.Config{})
	default:
		target, err = postgres.WithInstance(db, &postgres.Config{})
	}
	if err != nil {
		return fmt.Errorf("마이그레이션 드라이버 생성 실패: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return fmt.Errorf("마이그레이션 인스턴스 생성 실패: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("마이그레이션 실행 실패: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("마이그레이션이 dirty 상태입니다", zap.Uint("version", version))
	} else {
		logger.Info("마이그레이션 완료", zap.Uint("version", version))
	}

	return nil
}
