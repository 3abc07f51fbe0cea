package ingest

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Msg.Out = io.Discard
	os.Exit(m.Run())
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ext   string
		input string
		want  []string
	}{
		{"txt", ".txt", "first line\n\n  second line  \n", []string{"first line", "second line"}},
		{"jsonl", ".jsonl", `{"text": "one"}` + "\n" + `{"id": "x", "text": "two"}`, []string{"one", "two"}},
		{"json objects", ".json", `[{"text": "one"}, {"text": "two"}]`, []string{"one", "two"}},
		{"json strings", ".json", `["one", "", "two"]`, []string{"one", "two"}},
		{"yaml objects", ".yaml", "- text: one\n- id: b\n  text: two\n", []string{"one", "two"}},
		{"yml strings", ".yml", "- one\n- two\n", []string{"one", "two"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr, err := Parse(tt.ext, "sample", strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Texts(rr))
			for _, r := range rr {
				assert.NotEmpty(t, r.ID)
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	t.Parallel()
	rr, err := Parse(".jsonl", "s.jsonl", strings.NewReader(`{"text": "one"}`+"\n"+`{"id": "mine", "text": "two"}`))
	require.NoError(t, err)
	assert.Equal(t, "s.jsonl:1", rr[0].ID)
	assert.Equal(t, "mine", rr[1].ID)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	_, err := Parse(".docx", "x", strings.NewReader("whatever"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Parse(".txt", "x", strings.NewReader("\n \n"))
	assert.ErrorIs(t, err, ErrNoText)

	_, err = Parse(".jsonl", "x", strings.NewReader("{nope"))
	assert.Error(t, err)

	_, err = Parse(".json", "x", strings.NewReader(`{"text": "not a list"}`))
	assert.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha text\nbeta text\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("- gamma text\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.bin"), []byte{0, 1, 2}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.txt"), []byte("\n"), 0644))

	rr, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha text", "beta text", "gamma text"}, Texts(rr))
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "docs.jsonl")
	require.NoError(t, os.WriteFile(fn, []byte(`{"text": "whale shark"}`+"\n"), 0644))
	rr, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: "docs.jsonl:1", Text: "whale shark"}}, rr)

	_, err = Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)

	_, err = Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNoText)
}
