package reqlog

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq" // postgres driver
	"github.com/pkg/errors"

	"github.com/dialogs/dialog-acceptor/db"
	"github.com/dialogs/dialog-acceptor/db/migrations"
)

const insertRecord = `INSERT INTO accepted_requests (id, remote_addr, payload, received_at)
VALUES ($1, $2, $3, $4)`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Close() error
}

// PostgresSink inserts each record into the accepted_requests table.
// The payload is stored as bytea: requests are arbitrary bytes.
type PostgresSink struct {
	conn execer
}

// OpenPostgresSink connects to the database and applies the schema
// migrations when conf.Migrate is set
func OpenPostgresSink(ctx context.Context, conf db.Config) (*PostgresSink, error) {

	if err := conf.Check(); err != nil {
		return nil, err
	}

	conn, err := sql.Open("postgres", conf.ConnURL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if conf.Migrate {
		m, err := migrations.NewMigrateWithConn(conn, migrations.Assets, migrations.DirName, migrations.GetFilesList)
		if err != nil {
			conn.Close()
			return nil, err
		}

		if err := m.Up(); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return newPostgresSink(conn), nil
}

func newPostgresSink(conn execer) *PostgresSink {
	return &PostgresSink{
		conn: conn,
	}
}

func (s *PostgresSink) Write(ctx context.Context, rec *Record) error {

	_, err := s.conn.ExecContext(ctx, insertRecord,
		rec.ID, rec.RemoteAddr, []byte(rec.Payload), rec.ReceivedAt)

	return errors.Wrap(err, "failed to insert request record")
}

func (s *PostgresSink) Close() error {
	return errors.Wrap(s.conn.Close(), "close database")
}
