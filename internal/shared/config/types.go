package config

import "fmt"

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"omitempty,oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"min=0"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	OutputPath string `mapstructure:"output_path"`
}

// StatsConfig tunes the statistics engine.
type StatsConfig struct {
	// RecalcBatchSize is how many resources the recalculation job loads per
	// page when walking the whole database.
	RecalcBatchSize int `mapstructure:"recalc_batch_size" validate:"min=1"`
}
