//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"regexp"
	"time"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	// ErrNotFound - nothing is stored under that id
	ErrNotFound = errors.New("model not found")
	// ErrPartial - some but not all of a model's artifacts are present
	ErrPartial = errors.New("model is incomplete")
	// ErrStorage - the backend itself failed
	ErrStorage = errors.New("model storage failure")
	// ErrBadID - ids are used as file names, so they are restricted
	ErrBadID = errors.New("unacceptable model id")
)

var validid = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9_.-]{0,127}$`)

// Artifacts - the three co-located parts of a stored model; opaque bytes as far as storage is concerned
type Artifacts struct {
	Model  []byte
	Corpus []byte
	Vocab  []byte
}

// Complete - all three parts present
func (a Artifacts) Complete() bool {
	return len(a.Model) > 0 && len(a.Corpus) > 0 && len(a.Vocab) > 0
}

func (a Artifacts) Size() int64 {
	return int64(len(a.Model) + len(a.Corpus) + len(a.Vocab))
}

// ModelInfo - what List() reports about a stored model
type ModelInfo struct {
	ID     string    `json:"id"`
	Size   int64     `json:"size"`
	Stored time.Time `json:"stored"`
}

// Store - save and load are all-or-nothing: a reader either sees every artifact of one Save() or an error
type Store interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, id string, a Artifacts) error
	Load(ctx context.Context, id string) (Artifacts, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]ModelInfo, error)
	Close() error
}

// ValidID - letters, digits, '_', '-', '.'; no leading dot; at most 128 characters
func ValidID(id string) error {
	if !validid.MatchString(id) {
		return fmt.Errorf("%w: '%s'", ErrBadID, id)
	}
	return nil
}

// checksave - the checks every backend runs before writing anything
func checksave(id string, a Artifacts) error {
	if err := ValidID(id); err != nil {
		return err
	}
	if !a.Complete() {
		return fmt.Errorf("%w: refusing to store '%s' without all three artifacts", ErrPartial, id)
	}
	return nil
}

// Open - build and Init() the store named by cfg.Store: "pg", "sqlite", or "fs"
func Open(ctx context.Context, cfg str.CurrentConfiguration) (Store, error) {
	const (
		MSG1 = "model store: %s"
	)

	var s Store
	var err error
	switch cfg.Store {
	case "pg":
		s, err = NewPGStore(ctx, cfg)
		Msg.PEEK(fmt.Sprintf(MSG1, "PostgreSQL @ "+cfg.PGLogin.Host))
	case "fs":
		s, err = NewFSStore(cfg.FSPath)
		Msg.PEEK(fmt.Sprintf(MSG1, "files in "+cfg.FSPath))
	default:
		s, err = NewSQLiteStore(cfg.SQLiteDriver, cfg.SQLitePath)
		Msg.PEEK(fmt.Sprintf(MSG1, cfg.SQLiteDriver+" @ "+cfg.SQLitePath))
	}
	if err != nil {
		return nil, err
	}

	if err = s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
