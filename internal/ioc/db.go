package ioc

import (
	"github.com/JrMarcco/shipsync/internal/repository/dao"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DBFxOpt = fx.Provide(
	InitDB,
)

func InitDB() *gorm.DB {
	type config struct {
		DSN         string `mapstructure:"dsn"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	}

	cfg := &config{}
	if err := viper.UnmarshalKey("db.mysql", cfg); err != nil {
		panic(err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if cfg.AutoMigrate {
		if err = dao.InitTables(db); err != nil {
			panic(err)
		}
	}
	return db
}
