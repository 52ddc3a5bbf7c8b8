package color

import "testing"

func TestBaseColorsMatchTable(t *testing.T) {
	red := Value(1)
	if red.R != 0xcd || red.G != 0 || red.B != 0 {
		t.Errorf("index 1: got %+v, want red ~0xcd0000", red)
	}
}

func TestCubeCombinesAllChannels(t *testing.T) {
	idx := Cube(5, 0, 0)
	v := Value(idx)
	if v.R != 255 || v.G != 0 || v.B != 0 {
		t.Errorf("cube(5,0,0) = %+v, want pure red at max level", v)
	}

	idx = Cube(0, 5, 3)
	v = Value(idx)
	if v.R != 0 || v.G != 255 || v.B != 175 {
		t.Errorf("cube(0,5,3) = %+v, want g=255 b=175", v)
	}
}

func TestGreyscaleRamp(t *testing.T) {
	first := Value(Grey(0))
	last := Value(Grey(23))
	if first.R != 8 || first.G != 8 || first.B != 8 {
		t.Errorf("grey(0) = %+v, want (8,8,8)", first)
	}
	if last.R != 238 {
		t.Errorf("grey(23).R = %d, want 238", last.R)
	}
}

func TestDefaultSentinel(t *testing.T) {
	if !IsDefault(256) {
		t.Error("256 should be the default sentinel")
	}
	if IsDefault(255) {
		t.Error("255 is a real palette index, not default")
	}
}
