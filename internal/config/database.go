package config

import (
	"go-stock-ledger/pkg/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// Database returns the store settings for pkg/database
func (c *Config) Database() database.Config {
	level := logger.Warn
	if c.LogLevel >= logrus.DebugLevel {
		level = logger.Info
	}
	return database.Config{
		Driver:     c.DBDriver,
		DSN:        c.DBURL,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SQLitePath: c.SQLitePath,
		LogLevel:   level,
	}
}
