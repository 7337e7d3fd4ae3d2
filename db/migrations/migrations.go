package migrations

import (
	"database/sql"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	pkgerr "github.com/pkg/errors"
)

// A Migrate is a wrapper
type Migrate migrate.Migrate

// NewMigrateWithConn create a new migration driver by existing database connection
func NewMigrateWithConn(db *sql.DB, fs http.FileSystem, dirName string, getAssets FilesList) (*Migrate, error) {

	assetsDriver, err := NewAssetsDriver(fs, dirName, getAssets)
	if err != nil {
		return nil, pkgerr.Wrap(err, "new assets driver")
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, pkgerr.Wrap(err, "failed to create migrations data driver")
	}

	m, err := migrate.NewWithInstance("go-bindata", assetsDriver, "postgres", dbDriver)
	if err != nil {
		return nil, pkgerr.Wrap(err, "failed to create migrations instance")
	}

	return (*Migrate)(m), nil
}

// Up applies new migrations
func (m *Migrate) Up() error {

	native := (*migrate.Migrate)(m)
	err := native.Up()

	if err != nil && err != migrate.ErrNoChange {
		return pkgerr.Wrap(err, "migrations: up")
	}

	return nil
}
