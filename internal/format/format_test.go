package format

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

type sample struct {
	Heading   string `json:"heading"`
	TaskCount int    `json:"taskCount"`
	Done      bool   `json:"done"`
	Tags      []any  `json:"tags"`
}

func TestWriteEDN_KeywordsAndValues(t *testing.T) {
	var buf bytes.Buffer
	err := WriteEDN(&buf, sample{Heading: "2 tasks remaining", TaskCount: 2, Tags: []any{"a", nil}}, false)
	if err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{:done false :heading "2 tasks remaining" :tags ["a" nil] :task-count 2}`
	if got != want {
		t.Fatalf("edn mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteEDN_PrettyAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"tasks": []any{}, "count": 0}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :count 0\n  :tasks []\n}\n"
	if buf.String() != want {
		t.Fatalf("pretty edn mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

type textOnly struct{ s string }

func (t textOnly) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, t.s)
	return err
}

func TestWrite_Formats(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"count": 1}, "json", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if buf.String() != "{\"count\":1}\n" {
		t.Fatalf("unexpected json: %q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, textOnly{s: "hi"}, "text", false); err != nil {
		t.Fatalf("text: %v", err)
	}
	if buf.String() != "hi" {
		t.Fatalf("unexpected text: %q", buf.String())
	}

	if err := Write(&buf, map[string]int{}, "text", false); err == nil {
		t.Fatalf("expected text format to reject payload without WriteText")
	}
	if err := Write(&buf, nil, "yaml", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
}
