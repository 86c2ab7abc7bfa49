package cmd

import (
	"songmanager/config"
	"songmanager/infrastructure/persistence/relational"
)

// NewRelationalConfig maps the database section onto the gorm store settings.
func NewRelationalConfig(cfg *config.Config) *relational.Config {
	return &relational.Config{
		Driver:          cfg.Database.Type,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		Path:            cfg.Database.Path,
		LogLevel:        cfg.Database.LogLevel,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	}
}
