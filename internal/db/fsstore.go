//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/google/uuid"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FSStore - Root/<id>/{model,corpus,vocab}.json.gz; a save is written into a scratch directory which is then
// renamed into place, so a reader never finds a half-written model
type FSStore struct {
	Root string
	mtx  sync.Mutex
}

const scratchprefix = ".scratch-"

func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		root = vv.DEFAULTFSPATH
	}
	return &FSStore{Root: root}, nil
}

// Init - make Root; sweep away the debris of any save that died mid-way
func (s *FSStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.Root, vv.DIRPERMS); err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	ee, err := os.ReadDir(s.Root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	for _, e := range ee {
		if strings.HasPrefix(e.Name(), scratchprefix) {
			_ = os.RemoveAll(filepath.Join(s.Root, e.Name()))
		}
	}
	Msg.FYI("FSStore.Init(): success")
	return nil
}

func (s *FSStore) files(dir string) map[string]string {
	return map[string]string{
		vv.ARTMODEL:  filepath.Join(dir, vv.ARTMODEL),
		vv.ARTCORPUS: filepath.Join(dir, vv.ARTCORPUS),
		vv.ARTVOCAB:  filepath.Join(dir, vv.ARTVOCAB),
	}
}

func (s *FSStore) Save(ctx context.Context, id string, a Artifacts) error {
	if err := checksave(id, a); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	fail := func(e error) error {
		return fmt.Errorf("%w: %s", ErrStorage, e.Error())
	}

	// [a] write everything into the scratch dir
	scratch := filepath.Join(s.Root, scratchprefix+uuid.NewString())
	if err := os.MkdirAll(scratch, vv.DIRPERMS); err != nil {
		return fail(err)
	}
	data := map[string][]byte{vv.ARTMODEL: a.Model, vv.ARTCORPUS: a.Corpus, vv.ARTVOCAB: a.Vocab}
	for name, fn := range s.files(scratch) {
		if err := os.WriteFile(fn, data[name], vv.WRITEPERMS); err != nil {
			_ = os.RemoveAll(scratch)
			return fail(err)
		}
	}

	// [b] move any previous version aside, swap in the new one, then drop the old one
	target := filepath.Join(s.Root, id)
	old := ""
	if _, err := os.Stat(target); err == nil {
		old = filepath.Join(s.Root, scratchprefix+"old-"+uuid.NewString())
		if err = os.Rename(target, old); err != nil {
			_ = os.RemoveAll(scratch)
			return fail(err)
		}
	}
	if err := os.Rename(scratch, target); err != nil {
		if old != "" {
			_ = os.Rename(old, target)
		}
		_ = os.RemoveAll(scratch)
		return fail(err)
	}
	if old != "" {
		_ = os.RemoveAll(old)
	}

	Msg.TMI("FSStore.Save(): " + target)
	return nil
}

func (s *FSStore) Load(ctx context.Context, id string) (Artifacts, error) {
	if err := ValidID(id); err != nil {
		return Artifacts{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	dir := filepath.Join(s.Root, id)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return Artifacts{}, fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}

	got := make(map[string][]byte)
	missing := 0
	for name, fn := range s.files(dir) {
		b, err := os.ReadFile(fn)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing++
		case err != nil:
			return Artifacts{}, fmt.Errorf("%w: %s", ErrStorage, err.Error())
		default:
			got[name] = b
		}
	}

	if missing == 3 {
		return Artifacts{}, fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}

	a := Artifacts{Model: got[vv.ARTMODEL], Corpus: got[vv.ARTCORPUS], Vocab: got[vv.ARTVOCAB]}
	if missing > 0 || !a.Complete() {
		return Artifacts{}, fmt.Errorf("%w: '%s'", ErrPartial, id)
	}
	return a, nil
}

func (s *FSStore) Exists(ctx context.Context, id string) (bool, error) {
	if err := ValidID(id); err != nil {
		return false, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	_, err := os.Stat(filepath.Join(s.Root, id, vv.ARTMODEL))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	return true, nil
}

func (s *FSStore) Delete(ctx context.Context, id string) error {
	if err := ValidID(id); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	dir := filepath.Join(s.Root, id)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}
	return nil
}

func (s *FSStore) List(ctx context.Context) ([]ModelInfo, error) {
	ee, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorage, err.Error())
	}

	var mi []ModelInfo
	for _, e := range ee {
		if !e.IsDir() || strings.HasPrefix(e.Name(), scratchprefix) {
			continue
		}
		m := ModelInfo{ID: e.Name()}
		for _, fn := range s.files(filepath.Join(s.Root, e.Name())) {
			if st, serr := os.Stat(fn); serr == nil {
				m.Size += st.Size()
				if st.ModTime().After(m.Stored) {
					m.Stored = st.ModTime().UTC()
				}
			}
		}
		mi = append(mi, m)
	}
	sort.Slice(mi, func(i, j int) bool { return mi[i].ID < mi[j].ID })
	return mi, nil
}

func (s *FSStore) Close() error {
	return nil
}
