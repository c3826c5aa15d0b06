package carousel

import (
	"math"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
)

func TestCardPositionPose(t *testing.T) {
	tests := []struct {
		name         string
		position     CardPosition
		center       ebimath.Vector
		wantX, wantY float64
		wantRotation float64
	}{
		{"centered keeps center", Centered, ebimath.V(240, 400), 240, 400, 0},
		{"centered at origin", Centered, ebimath.V(0, 0), 0, 0, 0},
		{"rotated left", RotatedLeft, ebimath.V(240, 400), 240 - DefaultCardOffset, 400 + DefaultCardOffset, -math.Pi / 2},
		{"rotated right", RotatedRight, ebimath.V(240, 400), 240 + DefaultCardOffset, 400 + DefaultCardOffset, math.Pi / 2},
		{"rotated right fractional center", RotatedRight, ebimath.V(12.5, -3.25), 512.5, 496.75, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := tt.position.Pose(tt.center, DefaultCardOffset)
			if math.Abs(pose.Center.X-tt.wantX) > 1e-9 || math.Abs(pose.Center.Y-tt.wantY) > 1e-9 {
				t.Errorf("%s.Pose center = (%v, %v), want (%v, %v)",
					tt.position, pose.Center.X, pose.Center.Y, tt.wantX, tt.wantY)
			}
			if math.Abs(pose.Rotation-tt.wantRotation) > 1e-12 {
				t.Errorf("%s.Pose rotation = %v, want %v", tt.position, pose.Rotation, tt.wantRotation)
			}
		})
	}
}

func TestUnknownPositionFallsBackToCentered(t *testing.T) {
	pose := CardPosition(42).Pose(ebimath.V(10, 20), DefaultCardOffset)
	if pose.Center.X != 10 || pose.Center.Y != 20 || pose.Rotation != 0 {
		t.Errorf("unknown position pose = %+v, want centered", pose)
	}
	if CardPosition(42).String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", CardPosition(42).String())
	}
}
