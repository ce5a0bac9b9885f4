package image

import "testing"

func TestFitInside(t *testing.T) {
	tests := []struct {
		name             string
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{"already fits", 1000, 500, 2048, 1024, 1000, 500},
		{"width bound", 4096, 2048, 2048, 1024, 2048, 1024},
		{"height bound", 1000, 2000, 2048, 1024, 512, 1024},
		{"unconstrained height", 4000, 100, 2000, 0, 2000, 50},
		{"never zero", 10000, 1, 100, 100, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitInside(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FitInside = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResize(t *testing.T) {
	src, _ := NewRaster(400, 200)
	src.Fill(40, 80, 120, 255)

	dst, err := Resize(src, 100, 100)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if dst.Width() != 100 || dst.Height() != 50 {
		t.Fatalf("Resize = %dx%d, want 100x50", dst.Width(), dst.Height())
	}

	// Fixed-point scaling may be off by one.
	r, g, b, a := dst.GetRGBA(50, 25)
	if !near(r, 40) || !near(g, 80) || !near(b, 120) || !near(a, 255) {
		t.Errorf("center pixel = (%d,%d,%d,%d), want (40,80,120,255)", r, g, b, a)
	}
}

func TestResize_NoEnlarge(t *testing.T) {
	src, _ := NewRaster(10, 5)
	dst, err := Resize(src, 100, 100)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if dst == src {
		t.Error("Resize returned the source, want a copy")
	}
	if dst.Width() != 10 || dst.Height() != 5 {
		t.Errorf("Resize = %dx%d, want 10x5", dst.Width(), dst.Height())
	}

	if _, err := Resize(nil, 1, 1); err == nil {
		t.Error("Resize(nil) succeeded")
	}
}

func near(got, want uint8) bool {
	d := int(got) - int(want)
	return d >= -1 && d <= 1
}
