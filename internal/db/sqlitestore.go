//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
	"time"
)

// SQLiteStore - the same one-row-per-model layout as PGStore; "sqlite" is modernc.org/sqlite (pure go) and
// "sqlite3" is github.com/mattn/go-sqlite3 (cgo)
type SQLiteStore struct {
	db     *sql.DB
	driver string
}

func NewSQLiteStore(driver string, path string) (*SQLiteStore, error) {
	const (
		FAIL = "%w: cannot open %s with the '%s' driver: %s"
	)
	switch driver {
	case "sqlite", "sqlite3":
	default:
		driver = vv.DEFAULTSQLITEDRIVER
	}

	d, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf(FAIL, ErrStorage, path, driver, err.Error())
	}
	// one writer at a time; and every connection to ":memory:" would otherwise get its own empty database
	d.SetMaxOpenConns(1)
	return &SQLiteStore{db: d, driver: driver}, nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	const (
		CREATE = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  modelid     TEXT PRIMARY KEY,
			  modeldata   BLOB NOT NULL,
			  corpusdata  BLOB NOT NULL,
			  vocabdata   BLOB NOT NULL,
			  totalsize   INTEGER,
			  stored      INTEGER
			)`
	)
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(CREATE, vv.MODELTABLENAME)); err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	Msg.FYI(fmt.Sprintf("SQLiteStore.Init(): success [%s]", s.driver))
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, id string, a Artifacts) error {
	const (
		INS = `
			INSERT OR REPLACE INTO %s
				(modelid, modeldata, corpusdata, vocabdata, totalsize, stored)
			VALUES (?, ?, ?, ?, ?, ?)`
	)
	if err := checksave(id, a); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	ex := fmt.Sprintf(INS, vv.MODELTABLENAME)
	if _, err = tx.ExecContext(ctx, ex, id, a.Model, a.Corpus, a.Vocab, a.Size(), time.Now().UTC().Unix()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	Msg.TMI("SQLiteStore.Save(): " + id)
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (Artifacts, error) {
	const (
		Q = `SELECT modeldata, corpusdata, vocabdata FROM %s WHERE modelid = ? LIMIT 1`
	)
	if err := ValidID(id); err != nil {
		return Artifacts{}, err
	}

	var a Artifacts
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(Q, vv.MODELTABLENAME), id).Scan(&a.Model, &a.Corpus, &a.Vocab)
	if errors.Is(err, sql.ErrNoRows) {
		return Artifacts{}, fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	if !a.Complete() {
		return Artifacts{}, fmt.Errorf("%w: '%s'", ErrPartial, id)
	}
	return a, nil
}

func (s *SQLiteStore) Exists(ctx context.Context, id string) (bool, error) {
	const (
		Q = `SELECT COUNT(*) FROM %s WHERE modelid = ?`
	)
	if err := ValidID(id); err != nil {
		return false, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf(Q, vv.MODELTABLENAME), id).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	return n > 0, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	const (
		E = `DELETE FROM %s WHERE modelid = ?`
	)
	if err := ValidID(id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(E, vv.MODELTABLENAME), id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]ModelInfo, error) {
	const (
		Q = `SELECT modelid, totalsize, stored FROM %s ORDER BY modelid`
	)
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(Q, vv.MODELTABLENAME))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	defer rows.Close()

	var mi []ModelInfo
	for rows.Next() {
		var m ModelInfo
		var stored int64
		if err = rows.Scan(&m.ID, &m.Size, &stored); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrStorage, err.Error())
		}
		m.Stored = time.Unix(stored, 0).UTC()
		mi = append(mi, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	return mi, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
