package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("development", &buf)

	log.DebugContext(context.Background(), "dbg", "a", 1)

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=dbg", "a=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.Debug("hidden")
	log.Info("shown", "request_id", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d:\n%s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "shown" || entry["request_id"] != "abc" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}
