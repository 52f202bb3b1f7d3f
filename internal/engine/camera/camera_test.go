package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPositionSpherical(t *testing.T) {
	tests := []struct {
		name     string
		pitch    float32
		yaw      float32
		distance float32
		want     mgl32.Vec3
	}{
		{"level looking down -z", 0, 0, 10, mgl32.Vec3{0, 0, 10}},
		{"straight overhead", 90, 0, 10, mgl32.Vec3{0, 10, 0}},
		{"quarter turn", 0, 90, 10, mgl32.Vec3{10, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.distance, tt.pitch, tt.yaw, 45)
			c.Center = mgl32.Vec3{}
			got := c.Position()
			if !got.ApproxEqualThreshold(tt.want, 1e-5) {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionOffsetByCenter(t *testing.T) {
	c := New(10, 0, 0, 45)
	c.Center = mgl32.Vec3{1, 2, 3}
	got := c.Position()
	want := mgl32.Vec3{1, 2, 13}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := New(16, 20, 0, 45)

	c.Drag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch %v after huge upward drag, want clamp at %v", c.Pitch, c.MaxPitch)
	}

	c.Drag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch %v after huge downward drag, want clamp at %v", c.Pitch, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New(16, 20, 0, 45)

	for i := 0; i < 100; i++ {
		c.Zoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance %v after zooming in, want clamp at %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.Zoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance %v after zooming out, want clamp at %v", c.Distance, c.MaxDistance)
	}
}

func TestPanMovesCenter(t *testing.T) {
	c := New(16, 20, 0, 45)
	c.Center = mgl32.Vec3{}

	c.Pan(1, 0, 0)
	if c.Center.Z() >= 0 {
		t.Errorf("forward movement should decrease Z, center is %v", c.Center)
	}

	c = New(16, 20, 0, 45)
	c.Center = mgl32.Vec3{}
	c.Pan(0, 1, 0)
	if c.Center.X() <= 0 {
		t.Errorf("rightward movement should increase X, center is %v", c.Center)
	}

	c = New(16, 20, 0, 45)
	c.Center = mgl32.Vec3{}
	c.Pan(0, 0, 1)
	if c.Center.Y() <= 0 {
		t.Errorf("upward movement should increase Y, center is %v", c.Center)
	}
}

func TestProjectionModes(t *testing.T) {
	c := New(16, 20, 0, 45)

	persp := c.Projection(1280, 720)
	if persp[15] != 0 {
		t.Errorf("perspective matrix bottom-right = %v, want 0", persp[15])
	}

	c.Ortho = true
	ortho := c.Projection(1280, 720)
	if ortho[15] != 1 {
		t.Errorf("orthographic matrix bottom-right = %v, want 1", ortho[15])
	}
}
