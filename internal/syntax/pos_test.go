package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{
			name:    "with filename",
			pos:     NewPos("test.c", 42, 10, 5),
			wantStr: "test.c:10:5",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 42, 10, 5),
			wantStr: "10:5",
		},
		{
			name:    "line 1 col 1",
			pos:     NewPos("main.c", 0, 1, 1),
			wantStr: "main.c:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{"valid position", NewPos("test.c", 0, 1, 1), true},
		{"valid position line 100", NewPos("", 900, 100, 50), true},
		{"zero value", Pos{}, false},
		{"line 0", NewPos("test.c", 0, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosAccessors(t *testing.T) {
	pos := NewPos("file.c", 17, 3, 4)

	if pos.Filename() != "file.c" {
		t.Errorf("Filename() = %q, want %q", pos.Filename(), "file.c")
	}
	if pos.Offset() != 17 {
		t.Errorf("Offset() = %d, want 17", pos.Offset())
	}
	if pos.Line() != 3 {
		t.Errorf("Line() = %d, want 3", pos.Line())
	}
	if pos.Col() != 4 {
		t.Errorf("Col() = %d, want 4", pos.Col())
	}
}
