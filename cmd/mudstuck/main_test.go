package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mgrabmueller/mudstuck/internal/engine"
)

func newService(t *testing.T) *engine.GameService {
	t.Helper()
	w, err := engine.ExampleWorld()
	if err != nil {
		t.Fatal(err)
	}
	svc, err := engine.NewService(w, engine.NewConfig())
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestDispatch(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		line     string
		contains string
		quit     bool
	}{
		{line: "q", quit: true},
		{line: "quit", quit: true},
		{line: "h", contains: "show this help"},
		{line: "l", contains: "Ein kleiner Raum"},
		{line: "d", contains: "Die Tür ist geschlossen."},
		{line: "describe cramped.rock.tunnel", contains: "Felstunnel"},
		{line: "describe lamp", contains: "Es gibt nichts, was lamp heißt."},
		{line: "eat", contains: "I don't know how to do that."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			lines, quit := dispatch(svc, tt.line)
			if quit != tt.quit {
				t.Fatalf("quit = %v, want %v", quit, tt.quit)
			}
			if !strings.Contains(strings.Join(lines, "\n"), tt.contains) {
				t.Errorf("output %q does not contain %q", lines, tt.contains)
			}
		})
	}
}

func TestRunPlain(t *testing.T) {
	svc := newService(t)
	in := strings.NewReader("look\nquit\nlook\n")
	var out bytes.Buffer

	runPlain(svc, in, &out)

	if n := strings.Count(out.String(), "Ein kleiner Raum"); n != 1 {
		t.Errorf("expected one look before quit, got %d:\n%s", n, out.String())
	}
}

func TestHistoryPath(t *testing.T) {
	if got := historyPath(""); got != "" {
		t.Errorf("empty name should disable history, got %q", got)
	}
	if got := historyPath("/tmp/h"); got != "/tmp/h" {
		t.Errorf("absolute path changed: %q", got)
	}
	t.Setenv("HOME", "/home/player")
	if got := historyPath(".mudstuck_history"); got != "/home/player/.mudstuck_history" {
		t.Errorf("got %q", got)
	}
}
