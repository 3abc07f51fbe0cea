//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// PGStore - one row per model in vv.MODELTABLENAME; the three artifacts are bytea columns of that row, so a
// single INSERT ... ON CONFLICT makes a save atomic
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(ctx context.Context, cfg str.CurrentConfiguration) (*PGStore, error) {
	p, err := FillDBConnectionPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PGStore{pool: p}, nil
}

// Init - create vv.MODELTABLENAME if needed
func (s *PGStore) Init(ctx context.Context) error {
	const (
		CREATE = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  modelid     text PRIMARY KEY,
			  modeldata   bytea NOT NULL,
			  corpusdata  bytea NOT NULL,
			  vocabdata   bytea NOT NULL,
			  totalsize   bigint,
			  stored      timestamptz
			)`
	)
	if _, err := s.pool.Exec(ctx, fmt.Sprintf(CREATE, vv.MODELTABLENAME)); err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	Msg.FYI("PGStore.Init(): success")
	return nil
}

func (s *PGStore) Save(ctx context.Context, id string, a Artifacts) error {
	const (
		INS = `
			INSERT INTO %s
				(modelid, modeldata, corpusdata, vocabdata, totalsize, stored)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (modelid) DO UPDATE SET
				modeldata = EXCLUDED.modeldata,
				corpusdata = EXCLUDED.corpusdata,
				vocabdata = EXCLUDED.vocabdata,
				totalsize = EXCLUDED.totalsize,
				stored = EXCLUDED.stored`
	)
	if err := checksave(id, a); err != nil {
		return err
	}
	ex := fmt.Sprintf(INS, vv.MODELTABLENAME)
	if _, err := s.pool.Exec(ctx, ex, id, a.Model, a.Corpus, a.Vocab, a.Size(), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	Msg.TMI("PGStore.Save(): " + id)
	return nil
}

func (s *PGStore) Load(ctx context.Context, id string) (Artifacts, error) {
	const (
		Q = `SELECT modeldata, corpusdata, vocabdata FROM %s WHERE modelid = $1 LIMIT 1`
	)
	if err := ValidID(id); err != nil {
		return Artifacts{}, err
	}

	foundrow, err := s.pool.Query(ctx, fmt.Sprintf(Q, vv.MODELTABLENAME), id)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}

	a, err := pgx.CollectOneRow(foundrow, pgx.RowToStructByPos[Artifacts])
	if errors.Is(err, pgx.ErrNoRows) {
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

func (s *PGStore) Exists(ctx context.Context, id string) (bool, error) {
	const (
		Q = `SELECT EXISTS (SELECT 1 FROM %s WHERE modelid = $1)`
	)
	if err := ValidID(id); err != nil {
		return false, err
	}
	var found bool
	if err := s.pool.QueryRow(ctx, fmt.Sprintf(Q, vv.MODELTABLENAME), id).Scan(&found); err != nil {
		return false, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	return found, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	const (
		E = `DELETE FROM %s WHERE modelid = $1`
	)
	if err := ValidID(id); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(E, vv.MODELTABLENAME), id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	return nil
}

func (s *PGStore) List(ctx context.Context) ([]ModelInfo, error) {
	const (
		Q = `SELECT modelid, totalsize, stored FROM %s ORDER BY modelid`
	)
	rows, err := s.pool.Query(ctx, fmt.Sprintf(Q, vv.MODELTABLENAME))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	mi, err := pgx.CollectRows(rows, pgx.RowToStructByPos[ModelInfo])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	return mi, nil
}

func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}
