package density

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func collect(t *testing.T, src Source) []string {
	t.Helper()
	var lines []string
	if err := src.Lines(func(line string) error {
		lines = append(lines, line)
		return nil
	}); err != nil {
		t.Fatalf("lines: %v", err)
	}
	return lines
}

func tempFile(t *testing.T, content string) *os.File {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "input.tsv")
	if err := os.WriteFile(fn, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(fn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestSourcesAgree(t *testing.T) {
	var inputs = []string{
		"",
		"\n",
		"a\t1\nb\t2\n",
		"a\t1\nb\t2",
		"a\t1\r\n\r\nc\t3\n",
	}
	for _, input := range inputs {
		buffered := collect(t, NewSource(strings.NewReader(input)))
		f := tempFile(t, input)
		src := NewSource(f)
		if _, ok := src.(*mappedSource); !ok {
			t.Fatalf("regular file not mapped, got %T", src)
		}
		mapped := collect(t, src)
		if err := src.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
		if strings.Join(buffered, "|") != strings.Join(mapped, "|") || len(buffered) != len(mapped) {
			t.Errorf("%q: buffered %q, mapped %q", input, buffered, mapped)
		}
	}
}

func TestMappedSourceStartsAtFileOffset(t *testing.T) {
	f := tempFile(t, "skip\na\t1\n")
	if _, err := f.Read(make([]byte, 5)); err != nil {
		t.Fatal(err)
	}
	src := NewSource(f)
	defer src.Close()
	got := collect(t, src)
	if len(got) != 1 || got[0] != "a\t1" {
		t.Errorf("got %q", got)
	}
}

func TestPipeIsBuffered(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	go func() {
		io.WriteString(w, "1\n2\n")
		w.Close()
	}()
	src := NewSource(r)
	if _, ok := src.(*bufferedSource); !ok {
		t.Fatalf("pipe should be read through a buffer, got %T", src)
	}
	if got := collect(t, src); len(got) != 2 {
		t.Errorf("got %q", got)
	}
}

func TestRunFromFile(t *testing.T) {
	var out bytes.Buffer
	f := tempFile(t, "a\t1.0\nb\t2.0\nc\t7.0\n")
	if err := Run(Config{Field: 1}, f, &out, log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "a\t1.0\t0.10000\t0.10000\nb\t2.0\t0.20000\t0.30000\nc\t7.0\t0.70000\t1.00000\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
