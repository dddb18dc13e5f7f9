package sampler

import (
	"errors"
	"testing"
)

func TestSample_Deterministic(t *testing.T) {
	a, err := Sample(New(false), 20000, 16)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sample(New(false), 20000, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs differ at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestSample_Properties(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		n     int
	}{
		{"2x2 short video", 5000, 4},
		{"4x4 typical", 150000, 16},
		{"single cell", 1447, 1},
		{"exactly enough", 1446 + 9, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sample(New(false), tt.total, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.n {
				t.Fatalf("len = %d, want %d", len(got), tt.n)
			}
			for i, v := range got {
				if v < EdgeMargin || v >= tt.total-EdgeMargin {
					t.Errorf("index %d out of [%d,%d)", v, EdgeMargin, tt.total-EdgeMargin)
				}
				if i > 0 && got[i-1] >= v {
					t.Errorf("not strictly increasing at %d: %d >= %d", i, got[i-1], v)
				}
			}
		})
	}
}

func TestSample_ShuffleStillValid(t *testing.T) {
	got, err := Sample(New(true), 30000, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("not strictly increasing: %v", got)
		}
	}
}

func TestSample_InsufficientFrames(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		n     int
	}{
		{"one short", 1446 + 3, 4},
		{"zero frames", 0, 4},
		{"all inside margins", 1000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample(New(false), tt.total, tt.n)
			if !errors.Is(err, ErrInsufficientFrames) {
				t.Errorf("err = %v, want ErrInsufficientFrames", err)
			}
		})
	}
}
