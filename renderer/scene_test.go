package renderer

import "testing"

func TestFlattenTriangle(t *testing.T) {
	got := flatten(triangleVertices)
	if len(got) != 9 {
		t.Fatalf("expected 9 floats, got %d", len(got))
	}
	want := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex float %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
