package migration

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

type stmtCall struct {
	conn  int
	query string
}

// recordingConnector hands out a new connection per dial and records which
// connection ran each statement.
type recordingConnector struct {
	mu     sync.Mutex
	nextID int
	calls  []stmtCall
}

func (d *recordingConnector) Connect(context.Context) (driver.Conn, error) {
	return d.Open("")
}

func (d *recordingConnector) Driver() driver.Driver { return d }

func (d *recordingConnector) Open(string) (driver.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	return &recordingConn{id: d.nextID, d: d}, nil
}

func (d *recordingConnector) record(id int, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, stmtCall{conn: id, query: query})
}

func (d *recordingConnector) snapshot() []stmtCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]stmtCall(nil), d.calls...)
}

type recordingConn struct {
	id int
	d  *recordingConnector
}

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *recordingConn) Close() error              { return nil }
func (c *recordingConn) Begin() (driver.Tx, error) { return noopTx{}, nil }

func (c *recordingConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.d.record(c.id, query)
	return driver.RowsAffected(1), nil
}

func (c *recordingConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.d.record(c.id, query)
	return emptyRows{}, nil
}

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

type emptyRows struct{}

func (emptyRows) Columns() []string         { return []string{"version", "checksum"} }
func (emptyRows) Close() error              { return nil }
func (emptyRows) Next([]driver.Value) error { return io.EOF }

func TestRunner_Run_HoldsOneConnectionForTheLock(t *testing.T) {
	rec := &recordingConnector{}
	db := sql.OpenDB(rec)
	defer func() { _ = db.Close() }()
	db.SetMaxIdleConns(0)

	fsys := fstest.MapFS{
		"V1__first.sql":  {Data: []byte("CREATE TABLE a (id INT);")},
		"V2__second.sql": {Data: []byte("CREATE TABLE b (id INT);")},
	}
	if err := (Runner{FS: fsys}).Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	calls := rec.snapshot()
	if len(calls) != 8 {
		t.Fatalf("expected 8 statements, got %d: %+v", len(calls), calls)
	}
	for _, c := range calls {
		if c.conn != calls[0].conn {
			t.Fatalf("statements spread over connections: %+v", calls)
		}
	}
	if !strings.Contains(calls[1].query, "pg_advisory_lock") {
		t.Fatalf("expected lock second, got %q", calls[1].query)
	}
	if !strings.Contains(calls[len(calls)-1].query, "pg_advisory_unlock") {
		t.Fatalf("expected unlock last, got %q", calls[len(calls)-1].query)
	}
	if calls[3].query != "CREATE TABLE a (id INT);" || calls[5].query != "CREATE TABLE b (id INT);" {
		t.Fatalf("migrations applied out of order: %+v", calls)
	}
}
