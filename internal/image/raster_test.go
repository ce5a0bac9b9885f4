package image

import (
	"errors"
	"testing"
)

func TestNewRaster(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"valid", 100, 50, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 100, ErrInvalidDimensions},
		{"zero height", 100, 0, ErrInvalidDimensions},
		{"negative width", -1, 100, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRaster(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewRaster() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if r.Width() != tt.width || r.Height() != tt.height {
				t.Errorf("Bounds = %dx%d, want %dx%d", r.Width(), r.Height(), tt.width, tt.height)
			}
			if len(r.Data()) != tt.width*tt.height*Channels {
				t.Errorf("len(Data()) = %d, want %d", len(r.Data()), tt.width*tt.height*Channels)
			}
			if err := r.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 3*2*Channels)
	r, err := FromRaw(data, 3, 2)
	if err != nil {
		t.Fatalf("FromRaw failed: %v", err)
	}

	_ = r.SetRGBA(2, 1, 9, 8, 7, 6)
	if data[(1*3+2)*Channels] != 9 {
		t.Error("FromRaw copied the data, want shared")
	}

	if _, err := FromRaw(data[:len(data)-1], 3, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short data error = %v, want ErrShapeMismatch", err)
	}
	if _, err := FromRaw(data, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
}

func TestRaster_ValidateNil(t *testing.T) {
	var r *Raster
	if err := r.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil Validate() = %v, want ErrInvalidDimensions", err)
	}
	if err := (&Raster{}).Validate(); err == nil {
		t.Error("zero Raster passed Validate")
	}
}

func TestRaster_GetSetRGBA(t *testing.T) {
	r, _ := NewRaster(4, 3)

	if err := r.SetRGBA(3, 2, 10, 20, 30, 40); err != nil {
		t.Fatalf("SetRGBA failed: %v", err)
	}
	red, g, b, a := r.GetRGBA(3, 2)
	if red != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetRGBA = (%d,%d,%d,%d), want (10,20,30,40)", red, g, b, a)
	}

	if off := r.PixelOffset(3, 2); off != (2*4+3)*Channels {
		t.Errorf("PixelOffset = %d, want %d", off, (2*4+3)*Channels)
	}

	outOfBounds := [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}}
	for _, p := range outOfBounds {
		if err := r.SetRGBA(p[0], p[1], 1, 1, 1, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetRGBA(%v) error = %v, want ErrOutOfBounds", p, err)
		}
		if red, g, b, a := r.GetRGBA(p[0], p[1]); red|g|b|a != 0 {
			t.Errorf("GetRGBA(%v) = (%d,%d,%d,%d), want zero", p, red, g, b, a)
		}
	}
}

func TestRaster_RowBytes(t *testing.T) {
	r, _ := NewRaster(5, 2)
	_ = r.SetRGBA(0, 1, 77, 0, 0, 255)

	row := r.RowBytes(1)
	if len(row) != r.Stride() {
		t.Fatalf("len(RowBytes) = %d, want %d", len(row), r.Stride())
	}
	if row[0] != 77 {
		t.Errorf("RowBytes(1)[0] = %d, want 77", row[0])
	}
	if r.RowBytes(2) != nil {
		t.Error("RowBytes(2) should be nil")
	}
}

func TestRaster_CloneIsDeep(t *testing.T) {
	r, _ := NewRaster(2, 2)
	r.Fill(1, 2, 3, 4)

	c := r.Clone()
	_ = c.SetRGBA(0, 0, 200, 200, 200, 200)

	if red, _, _, _ := r.GetRGBA(0, 0); red != 1 {
		t.Errorf("original modified through clone: red = %d", red)
	}
	if c.Width() != 2 || c.Height() != 2 {
		t.Errorf("clone bounds = %dx%d", c.Width(), c.Height())
	}
}

func TestRaster_FillClear(t *testing.T) {
	r, _ := NewRaster(3, 3)
	r.Fill(255, 128, 0, 255)

	for y := range 3 {
		for x := range 3 {
			red, g, b, a := r.GetRGBA(x, y)
			if red != 255 || g != 128 || b != 0 || a != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d) after Fill", x, y, red, g, b, a)
			}
		}
	}

	r.Clear()
	for i, v := range r.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d after Clear", i, v)
		}
	}
}
