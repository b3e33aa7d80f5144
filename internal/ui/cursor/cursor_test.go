package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		margin  int
		start   int
		delta   int
		n       int
		height  int
		wantPos int
		wantTop int
	}{
		{"down inside window", 2, 0, 1, 10, 5, 1, 0},
		{"down past margin scrolls", 2, 0, 3, 10, 5, 3, 1},
		{"up stops at first row", 1, 2, -5, 10, 5, 0, 0},
		{"down stops at last row", 1, 0, 50, 10, 5, 9, 5},
		{"short list never scrolls", 2, 0, 3, 4, 10, 3, 0},
		{"margin larger than half height", 10, 0, 2, 10, 3, 2, 1},
		{"zero height keeps window", 1, 0, 4, 10, 0, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Move(tt.start, tt.n, tt.height)
			c.Move(tt.delta, tt.n, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if start, _ := c.Window(tt.n, max(tt.height, 1)); tt.height > 0 && start != tt.wantTop {
				t.Errorf("top = %d, want %d", start, tt.wantTop)
			}
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(1)
	c.Move(3, 0, 5)
	if c.Pos() != 0 {
		t.Errorf("pos = %d, want 0", c.Pos())
	}
}

func TestMove_UpScrollsBack(t *testing.T) {
	c := New(1)
	c.Move(9, 10, 4)
	if start, _ := c.Window(10, 4); start != 6 {
		t.Fatalf("top = %d, want 6", start)
	}
	c.Move(-3, 10, 4)
	if start, _ := c.Window(10, 4); start != 5 {
		t.Errorf("top = %d, want 5", start)
	}
}

func TestClamp(t *testing.T) {
	c := New(1)
	c.Move(9, 10, 4)
	c.Clamp(5)
	if c.Pos() != 4 {
		t.Errorf("pos = %d, want 4", c.Pos())
	}
	start, end := c.Window(5, 4)
	if start != 1 || end != 5 {
		t.Errorf("window = [%d,%d), want [1,5)", start, end)
	}

	c.Clamp(0)
	if c.Pos() != 0 {
		t.Errorf("pos after emptying = %d, want 0", c.Pos())
	}
	if start, end := c.Window(0, 4); start != 0 || end != 0 {
		t.Errorf("window of empty list = [%d,%d), want [0,0)", start, end)
	}
}

func TestWindow(t *testing.T) {
	c := New(0)
	if start, end := c.Window(3, 10); start != 0 || end != 3 {
		t.Errorf("window = [%d,%d), want [0,3)", start, end)
	}
	if start, end := c.Window(3, 0); start != 0 || end != 0 {
		t.Errorf("zero height window = [%d,%d), want [0,0)", start, end)
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		wantPos int
	}{
		{"j", 0, 1},
		{"down", 3, 4},
		{"k", 3, 2},
		{"up", 0, 0},
		{"ctrl+d", 0, 4},
		{"ctrl+u", 10, 6},
		{"pgdown", 0, 8},
		{"pgup", 19, 11},
		{"g", 12, 0},
		{"home", 5, 0},
		{"G", 0, 19},
		{"end", 7, 19},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(1)
			c.Move(tt.start, 20, 8)
			if !c.HandleKey(tt.key, 20, 8) {
				t.Fatalf("HandleKey(%q) = false", tt.key)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestHandleKey_Unknown(t *testing.T) {
	c := New(1)
	if c.HandleKey("x", 10, 5) {
		t.Error("HandleKey(x) = true, want false")
	}
}
