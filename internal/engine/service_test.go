package engine

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/mgrabmueller/mudstuck/internal/domain"
	"github.com/mgrabmueller/mudstuck/pkg/dungeon"
	"github.com/mgrabmueller/mudstuck/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithOutput(io.Discard)
	os.Exit(m.Run())
}

func newExampleService(t *testing.T) *GameService {
	t.Helper()
	w, err := ExampleWorld()
	if err != nil {
		t.Fatalf("ExampleWorld: %v", err)
	}
	s, err := NewService(w, NewConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return s
}

// newTwoRoomService - две комнаты и открытая дверь между ними
func newTwoRoomService(t *testing.T, doorLong string) *GameService {
	t.Helper()
	open := false
	w, err := dungeon.NewWorld("Test").
		Room("room.a", dungeon.EntityTemplate{Short: "Raum A", Long: "Die Tür ist #(if (closed door) \"zu\" \"offen\")."}).
		Room("room.b", dungeon.EntityTemplate{Short: "Raum B", Long: "Hier ist es dunkel."}).
		Door("door", dungeon.EntityTemplate{Short: "Tür", Long: doorLong, Closed: &open}, "room.a", "room.b").
		StartAt("room.a").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s, err := NewService(w, NewConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return s
}

func joined(lines []string) string {
	return strings.Join(lines, " ")
}

func TestService_Look(t *testing.T) {
	s := newExampleService(t)
	lines := s.Look()

	if len(lines) < 2 {
		t.Fatalf("expected short and long description, got %q", lines)
	}
	if lines[0] != "Ein kleiner Raum mit Wänden aus rohem Fels" {
		t.Errorf("short description = %q", lines[0])
	}

	text := joined(lines)
	if !strings.Contains(text, "gegenüber ist eine geschlossene Metalltür eingelassen.") {
		t.Errorf("long description does not reflect closed unlocked door: %q", text)
	}
	if strings.Contains(text, "verriegelte") {
		t.Errorf("door is not locked, got %q", text)
	}
	for _, l := range lines {
		if n := len([]rune(l)); n > DefaultWidth {
			t.Errorf("line longer than %d runes (%d): %q", DefaultWidth, n, l)
		}
	}
}

func TestService_Describe(t *testing.T) {
	s := newExampleService(t)

	tests := []struct {
		name string
		want []string
	}{
		{
			name: "rusty.metal.door",
			want: []string{"Metalltür", "Eine verbeulte, rostige Tür aus Metall. Die Tür ist geschlossen."},
		},
		{
			name: "door",
			want: []string{"Es gibt nichts, was door heißt.", "Meinst du rusty.metal.door?"},
		},
		{
			name: "xyz",
			want: []string{"Es gibt nichts, was xyz heißt."},
		},
		{
			name: "",
			want: []string{"Es gibt nichts, was  heißt."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Describe(tt.name)
			if joined(got) != joined(tt.want) || len(got) != len(tt.want) {
				t.Errorf("Describe(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestService_RenderErrorDoesNotAbort(t *testing.T) {
	s := newTwoRoomService(t, "#(closed door)")

	lines := s.Describe("door")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", lines)
	}
	if lines[0] != "Tür" {
		t.Errorf("short description should still render, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "an error has occurred: invalid value") {
		t.Errorf("expected render error line, got %q", lines[1])
	}
}

func TestService_Execute(t *testing.T) {
	s := newExampleService(t)

	tests := []struct {
		input string
		want  []string
	}{
		{"go rusty metal door", []string{"Die Tür ist geschlossen."}},
		{"north", []string{"In diese Richtung führt kein Weg."}},
		{"eat", []string{"I don't know how to do that."}},
		{"dance", []string{"I don't know how to do that.", "(cannot parse command: not a valid verb)"}},
		{"", []string{"I don't know how to do that.", "(cannot parse command: command expected)"}},
		{"use lamp", []string{"Es gibt nichts, was lamp heißt."}},
		{"use the rusty metal door", []string{"Metalltür", "Eine verbeulte, rostige Tür aus Metall. Die Tür ist geschlossen."}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := s.Execute(tt.input)
			if len(got) != len(tt.want) || joined(got) != joined(tt.want) {
				t.Errorf("Execute(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if s.Location != s.World.Start {
		t.Errorf("player should not have moved")
	}
}

func TestService_MoveThroughOpenDoor(t *testing.T) {
	s := newTwoRoomService(t, "Eine Holztür.")
	start := s.Location

	out := s.Execute("go door")
	if s.Location == start {
		t.Fatalf("player did not move, output %q", out)
	}
	if joined(out) != "Raum B Hier ist es dunkel." {
		t.Errorf("expected look at new location, got %q", out)
	}

	out = s.Execute("go to the door")
	if s.Location != start {
		t.Fatalf("player did not move back, output %q", out)
	}
	if joined(out) != "Raum A Die Tür ist offen." {
		t.Errorf("unexpected output %q", out)
	}
}

func TestService_MoveThroughNonDoor(t *testing.T) {
	s := newTwoRoomService(t, "Eine Holztür.")

	out := s.Execute("go room b")
	if joined(out) != "Dort kann man nicht hindurchgehen." {
		t.Errorf("command words form a dotted name, got %q", out)
	}

	out = s.Execute("go")
	if joined(out) != "MOVE what?" {
		t.Errorf("got %q", out)
	}
}

func TestNewService_BadConfig(t *testing.T) {
	w, err := ExampleWorld()
	if err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Width = 0
	if _, err := NewService(w, cfg); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestExampleWorld(t *testing.T) {
	w, err := ExampleWorld()
	if err != nil {
		t.Fatalf("ExampleWorld: %v", err)
	}
	if w.Len() != 3 {
		t.Fatalf("expected 3 entities, got %d", w.Len())
	}

	doorID, ok := w.Lookup(domain.ParseName(ExampleDoor))
	if !ok {
		t.Fatal("door not found")
	}
	door, _ := w.Entity(doorID)
	if !door.IsClosed() || door.IsLocked() {
		t.Errorf("door should be closed and unlocked")
	}
	if door.Alias != "metal_door_1" {
		t.Errorf("alias = %q", door.Alias)
	}

	roomID, _ := w.Lookup(domain.ParseName(ExampleRoom))
	if w.Start != roomID {
		t.Errorf("start should be %s", ExampleRoom)
	}
	tunnelID, _ := w.Lookup(domain.ParseName(ExampleTunnel))
	d, _ := door.Door()
	if other, _ := d.Other(roomID); other != tunnelID {
		t.Errorf("door should lead from room to tunnel")
	}
}
