package field

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHorizonRadius(t *testing.T) {
	b, err := NewBody(mgl64.Vec2{0, 0}, 1.0, 1000.0, 15.0)
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}

	expected := 2.0 * 1000.0 / 225.0
	if math.Abs(b.Rs-expected) > 1e-12 {
		t.Errorf("expected Rs %f, got %f", expected, b.Rs)
	}
}

func TestNewBodyInvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		g, m, c float64
		want    error
	}{
		{"zero g", 0, 1000, 15, ErrNonPositiveG},
		{"negative g", -1, 1000, 15, ErrNonPositiveG},
		{"zero mass", 1, 0, 15, ErrNonPositiveMass},
		{"negative mass", 1, -1000, 15, ErrNonPositiveMass},
		{"zero clamp speed", 1, 1000, 0, ErrNonPositiveClamp},
		{"negative clamp speed", 1, 1000, -15, ErrNonPositiveClamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(mgl64.Vec2{0, 0}, tt.g, tt.m, tt.c)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBodyPositionOffCenter(t *testing.T) {
	pos := mgl64.Vec2{50, -30}
	b, err := NewBody(pos, 1.0, 1000.0, 15.0)
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}
	if b.Pos != pos {
		t.Errorf("expected position %v, got %v", pos, b.Pos)
	}
}
