package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"

	"socialmedia/config"
)

func dsnFromConfig(dbConf config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConf.Host, dbConf.Port, dbConf.User, dbConf.Password, dbConf.DBName,
	)
}

// Connect opens the store described by conf and returns the handle. The
// caller owns the handle: it is injected into the services and closed
// via Close on shutdown.
func Connect(conf *config.ConfigSchema) (*gorm.DB, error) {
	gormConf := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
			NoLowerCase:   false,
		},
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}

	switch conf.Database.Driver {
	case "", "sqlite":
		return connectSQLite(conf.Database.Path, gormConf)
	case "postgres":
		return connectPostgres(conf, gormConf)
	default:
		return nil, fmt.Errorf("unknown database driver %q", conf.Database.Driver)
	}
}

func connectSQLite(path string, gormConf *gorm.Config) (*gorm.DB, error) {
	// _fk=1 turns on foreign key enforcement; sqlite ships with it off.
	dsn := fmt.Sprintf("file:%s?_fk=1", path)
	database, err := gorm.Open(sqlite.Open(dsn), gormConf)
	if err != nil {
		return nil, err
	}

	// One shared connection, process-wide. Every store operation
	// serializes through this handle, which also keeps sqlite away
	// from SQLITE_BUSY under concurrent writers.
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return database, nil
}

func connectPostgres(conf *config.ConfigSchema, gormConf *gorm.Config) (*gorm.DB, error) {
	if conf.Database.Master.Host == "" {
		return nil, fmt.Errorf("master database configuration is missing")
	}

	masterDSN := dsnFromConfig(conf.Database.Master)
	database, err := gorm.Open(postgres.Open(masterDSN), gormConf)
	if err != nil {
		return nil, err
	}

	if len(conf.Database.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(conf.Database.Replicas))
		for _, r := range conf.Database.Replicas {
			replicas = append(replicas, postgres.Open(dsnFromConfig(r)))
		}
		err = database.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, err
		}
	}

	return database, nil
}

// Close releases the underlying connection.
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
