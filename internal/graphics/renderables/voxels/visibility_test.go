package voxels

import "testing"

func TestFaceVisibleTruthTable(t *testing.T) {
	cases := []struct {
		name     string
		model    uint32
		instance uint32
		want     bool
	}{
		{"same single face", 0b000001, 0b000001, true},
		{"different faces", 0b000001, 0b000010, false},
		{"no membership", 0, 0b111111, false},
		{"no exposure", 0b111111, 0, false},
		{"one shared of many", 0b000001, 0b000011, true},
		{"multi-face vertex, one exposed", 0b000011, 0b000010, true},
		{"all against all", 0b111111, 0b111111, true},
	}
	for _, tc := range cases {
		if got := FaceVisible(tc.model, tc.instance); got != tc.want {
			t.Errorf("%s: FaceVisible(%06b, %06b) = %v, want %v", tc.name, tc.model, tc.instance, got, tc.want)
		}
	}
}

func TestFaceVisibleMasksHighBits(t *testing.T) {
	// Colorize bits above the face field must never create visibility.
	if FaceVisible(1<<6|1<<7, 1<<6|1<<7) {
		t.Fatal("high bits counted as shared faces")
	}
	if !FaceVisible(1<<6|0b000001, 0b000001) {
		t.Fatal("face bit ignored in presence of colorize bit")
	}
}

func TestVisibilityScalar(t *testing.T) {
	if got := VisibilityScalar(0b000001, 0b000011); got != 1 {
		t.Errorf("shared bit 0: got %v, want 1", got)
	}
	if got := VisibilityScalar(0b000001, 0b000010); got != 0 {
		t.Errorf("disjoint: got %v, want 0", got)
	}
	if got := VisibilityScalar(0b111111, 0b111111); got != 63 {
		t.Errorf("all shared: got %v, want 63", got)
	}
}

func TestFragmentDiscardRule(t *testing.T) {
	// The interpolated visibility value discards only when it rounds to
	// zero; any interpolation between visible corners stays visible.
	if FragmentDrawn(0) {
		t.Error("zero visibility must discard")
	}
	if FragmentDrawn(0.4) {
		t.Error("0.4 rounds to zero and must discard")
	}
	if !FragmentDrawn(0.5) {
		t.Error("0.5 rounds up and must draw")
	}
	if !FragmentDrawn(63) {
		t.Error("full visibility must draw")
	}
}

func TestEmptyExposureDiscardsEveryVertex(t *testing.T) {
	// An instance with no exposed faces yields zero visibility for every
	// possible vertex membership mask.
	for model := uint32(0); model < 64; model++ {
		if VisibilityScalar(model, 0) != 0 {
			t.Fatalf("model mask %06b visible against empty exposure", model)
		}
	}
}
