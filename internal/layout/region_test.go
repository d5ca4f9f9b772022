package layout

import "testing"

func TestNewRegion(t *testing.T) {
	r := NewRegion(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRegion().X = %d, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRegion().Y = %d, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRegion().Width = %d, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRegion().Height = %d, want 15", r.Height)
	}
}

func TestRegion_RightBottom(t *testing.T) {
	type tc struct {
		region Region
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard region": {
			region: NewRegion(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			region: NewRegion(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			region: NewRegion(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.region.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.region.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRegion_IsEmpty(t *testing.T) {
	type tc struct {
		region Region
		empty  bool
	}

	tests := map[string]tc{
		"standard region": {region: NewRegion(0, 0, 10, 5), empty: false},
		"zero width":      {region: NewRegion(0, 0, 0, 10), empty: true},
		"negative height": {region: NewRegion(0, 0, 10, -5), empty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.region.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRegion_Shrink(t *testing.T) {
	type tc struct {
		region   Region
		spacing  Spacing
		expected Region
	}

	tests := map[string]tc{
		"uniform": {
			region:   NewRegion(0, 0, 100, 50),
			spacing:  SpacingAll(5),
			expected: NewRegion(5, 5, 90, 40),
		},
		"top dock reservation": {
			region:   NewRegion(0, 0, 80, 24),
			spacing:  SpacingTRBL(3, 0, 0, 0),
			expected: NewRegion(0, 3, 80, 21),
		},
		"left and right": {
			region:   NewRegion(0, 0, 40, 10),
			spacing:  SpacingTRBL(0, 5, 0, 5),
			expected: NewRegion(5, 0, 30, 10),
		},
		"over-constrained floors at zero": {
			region:   NewRegion(0, 0, 4, 4),
			spacing:  SpacingAll(3),
			expected: NewRegion(3, 3, 0, 0),
		},
		"zero spacing": {
			region:   NewRegion(2, 3, 4, 5),
			spacing:  Spacing{},
			expected: NewRegion(2, 3, 4, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.region.Shrink(tt.spacing)
			if got != tt.expected {
				t.Errorf("Shrink(%v) = %+v, want %+v", tt.spacing, got, tt.expected)
			}
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("Shrink(%v) produced negative extent %+v", tt.spacing, got)
			}
		})
	}
}

func TestRegion_Translate(t *testing.T) {
	type tc struct {
		region   Region
		offset   Offset
		expected Region
	}

	tests := map[string]tc{
		"positive translation": {
			region:   NewRegion(10, 20, 30, 40),
			offset:   Offset{X: 5, Y: 15},
			expected: NewRegion(15, 35, 30, 40),
		},
		"negative translation": {
			region:   NewRegion(10, 20, 30, 40),
			offset:   Offset{X: -5, Y: -10},
			expected: NewRegion(5, 10, 30, 40),
		},
		"no translation": {
			region:   NewRegion(10, 20, 30, 40),
			expected: NewRegion(10, 20, 30, 40),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.region.Translate(tt.offset)
			if got != tt.expected {
				t.Errorf("Translate(%+v) = %+v, want %+v", tt.offset, got, tt.expected)
			}
		})
	}
}

func TestRegion_Clip(t *testing.T) {
	bounds := NewRegion(10, 10, 20, 20)

	type tc struct {
		region   Region
		expected Region
	}

	tests := map[string]tc{
		"inside is unchanged": {
			region:   NewRegion(12, 12, 5, 5),
			expected: NewRegion(12, 12, 5, 5),
		},
		"overflowing right and bottom": {
			region:   NewRegion(25, 20, 10, 15),
			expected: NewRegion(25, 20, 5, 10),
		},
		"overflowing left and top": {
			region:   NewRegion(5, 0, 10, 15),
			expected: NewRegion(10, 10, 5, 5),
		},
		"touching edge is empty": {
			region:   NewRegion(30, 12, 4, 4),
			expected: NewRegion(30, 12, 0, 4),
		},
		"far outside collapses onto bounds": {
			region:   NewRegion(-50, 100, 5, 5),
			expected: NewRegion(10, 30, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.region.Clip(bounds)
			if got != tt.expected {
				t.Errorf("Clip() = %+v, want %+v", got, tt.expected)
			}
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("Clip() produced negative size %+v", got)
			}
		})
	}
}

func TestRegion_Immutability(t *testing.T) {
	original := NewRegion(10, 10, 20, 20)

	_ = original.Shrink(SpacingAll(5))
	_ = original.Clip(NewRegion(0, 0, 15, 15))
	_ = original.Translate(Offset{X: 10, Y: 10})

	if original != NewRegion(10, 10, 20, 20) {
		t.Error("original region was modified by method calls")
	}
}

func TestRegion_OffsetAndSize(t *testing.T) {
	r := NewRegion(3, 4, 5, 6)
	if got := r.Offset(); got != (Offset{X: 3, Y: 4}) {
		t.Errorf("Offset() = %+v, want {3 4}", got)
	}
	if got := r.Size(); got != NewSize(5, 6) {
		t.Errorf("Size() = %+v, want 5x6", got)
	}
	if got := NewSize(5, 6).Region(); got != NewRegion(0, 0, 5, 6) {
		t.Errorf("Size.Region() = %+v, want (0,0,5,6)", got)
	}
}

func TestOffset(t *testing.T) {
	a := Offset{X: 3, Y: 4}

	if a.IsZero() {
		t.Error("IsZero() = true for non-zero offset")
	}
	if !(Offset{}).IsZero() {
		t.Error("IsZero() = false for zero offset")
	}
}
