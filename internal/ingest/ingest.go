//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/gen"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/ledongthuc/pdf"
	"gopkg.in/yaml.v3"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	ErrUnsupported = errors.New("unsupported corpus format")
	ErrNoText      = errors.New("no text found")
)

// Record - one training document and where it came from
type Record struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Supported - file extensions Load() understands
var Supported = []string{".txt", ".jsonl", ".json", ".yaml", ".yml", ".pdf"}

// Load - a file or a directory of files; a directory is walked in lexical order and unsupported files are skipped
func Load(path string) ([]Record, error) {
	const (
		MSG1 = "ingest.Load(): %s records from %s"
		MSG2 = "ingest.Load(): skipping %s"
	)

	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !st.IsDir() {
		rr, err := loadfile(path)
		if err != nil {
			return nil, err
		}
		Msg.PEEK(fmt.Sprintf(MSG1, Msg.Count(len(rr)), path))
		return rr, nil
	}

	var all []Record
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if d.IsDir() {
			return nil
		}
		rr, lerr := loadfile(p)
		if errors.Is(lerr, ErrUnsupported) || errors.Is(lerr, ErrNoText) {
			Msg.TMI(fmt.Sprintf(MSG2, p))
			return nil
		}
		if lerr != nil {
			return lerr
		}
		all = append(all, rr...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoText, path)
	}
	Msg.PEEK(fmt.Sprintf(MSG1, Msg.Count(len(all)), path))
	return all, nil
}

// Texts - just the text of each record
func Texts(rr []Record) []string {
	tt := make([]string, len(rr))
	for i := range rr {
		tt[i] = rr[i].Text
	}
	return tt
}

func loadfile(path string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return loadpdf(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rr, err := Parse(ext, filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rr, nil
}

// Parse - read records of the kind named by ext (".txt", ".jsonl", ".json", ".yaml", ".yml") from r
func Parse(ext string, name string, r io.Reader) ([]Record, error) {
	var rr []Record
	var err error
	switch ext {
	case ".txt":
		rr, err = parselines(r, func(line string) (Record, error) { return Record{Text: line}, nil })
	case ".jsonl":
		rr, err = parselines(r, func(line string) (Record, error) {
			var rec Record
			e := json.Unmarshal([]byte(line), &rec)
			return rec, e
		})
	case ".json":
		rr, err = parsestructured(r, json.Unmarshal)
	case ".yaml", ".yml":
		rr, err = parsestructured(r, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, err
	}
	return finish(rr, name)
}

// parselines - one record per non-blank line
func parselines(r io.Reader, conv func(string) (Record, error)) ([]Record, error) {
	var rr []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := conv(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		rr = append(rr, rec)
	}
	return rr, sc.Err()
}

// parsestructured - a list of {id, text} objects or a list of strings
func parsestructured(r io.Reader, unmarshal func([]byte, any) error) ([]Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rr []Record
	if err = unmarshal(b, &rr); err == nil {
		return rr, nil
	}

	var ss []string
	if serr := unmarshal(b, &ss); serr != nil {
		return nil, err
	}
	rr = make([]Record, len(ss))
	for i := range ss {
		rr[i] = Record{Text: ss[i]}
	}
	return rr, nil
}

// loadpdf - one record per page
func loadpdf(path string) ([]Record, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var rr []Record
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, perr := p.GetPlainText(nil)
		if perr != nil {
			Msg.TMI(fmt.Sprintf("loadpdf(): %s p.%d: %s", path, i, perr.Error()))
			continue
		}
		rr = append(rr, Record{ID: fmt.Sprintf("%s:p%d", filepath.Base(path), i), Text: txt})
	}
	return finish(rr, filepath.Base(path))
}

// finish - scrub the texts, drop the empty ones, cap the total, and number anything without an id
func finish(rr []Record, name string) ([]Record, error) {
	out := make([]Record, 0, len(rr))
	for _, rec := range rr {
		rec.Text = strings.TrimSpace(gen.ScrubControl(rec.Text))
		if rec.Text == "" {
			continue
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("%s:%d", name, len(out)+1)
		}
		out = append(out, rec)
		if len(out) >= vv.MAXTRAINDOCS {
			Msg.WARN(fmt.Sprintf("ingest: %s truncated at %s records", name, Msg.Count(vv.MAXTRAINDOCS)))
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoText, name)
	}
	return out, nil
}
