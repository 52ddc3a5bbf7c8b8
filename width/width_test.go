package width

import "testing"

func TestNarrowASCII(t *testing.T) {
	for _, r := range "Hello, World! 123" {
		if w := RuneWidth(r); w != 1 {
			t.Errorf("RuneWidth(%q) = %d, want 1", r, w)
		}
	}
}

func TestWideHiragana(t *testing.T) {
	if w := RuneWidth(0x3042); w != 2 {
		t.Errorf("RuneWidth(HIRAGANA A) = %d, want 2", w)
	}
}

func TestNarrowGapInsideCJKSymbols(t *testing.T) {
	if w := RuneWidth(0x2e9a); w != 1 {
		t.Errorf("RuneWidth(0x2e9a) = %d, want 1 (documented gap)", w)
	}
	if w := RuneWidth(0x2e99); w != 2 {
		t.Errorf("RuneWidth(0x2e99) = %d, want 2", w)
	}
}

func TestFullwidthForms(t *testing.T) {
	if w := RuneWidth(0xff21); w != 2 {
		t.Errorf("RuneWidth(fullwidth A) = %d, want 2", w)
	}
	if w := RuneWidth(0xff61); w != 1 {
		t.Errorf("RuneWidth(0xff61) = %d, want 1 (halfwidth form boundary)", w)
	}
}

func TestStringWidthSums(t *testing.T) {
	if w := StringWidth("A" + string(rune(0x3042))); w != 3 {
		t.Errorf("StringWidth = %d, want 3", w)
	}
}

func TestUpperBoundNarrow(t *testing.T) {
	if w := RuneWidth(0x10ffff); w != 1 {
		t.Errorf("RuneWidth(max rune) = %d, want 1", w)
	}
}
