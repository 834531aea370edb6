package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// 档案库的全部结构变更与种子数据随二进制发布，启动时自动应用
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations 将人事档案库迁移到最新版本
// 嵌入的 SQL 按版本号顺序应用，已应用的版本自动跳过
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载嵌入迁移文件失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("初始化档案库迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("创建迁移实例失败: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("应用档案库迁移失败: %w", err)
	}
	upToDate := errors.Is(err, migrate.ErrNoChange)

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("档案库迁移处于 dirty 状态，需人工介入",
			zap.Uint("version", version))
		return nil
	}

	logger.Info("档案库结构已就绪",
		zap.Uint("version", version),
		zap.Bool("already_up_to_date", upToDate))

	return nil
}
