package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// MockSurface records the last uploaded frame
type MockSurface struct {
	width, height int
	pixels        []uint32
	uploads       int
	err           error
}

func (m *MockSurface) Upload(width, height int, pixels []uint32) error {
	m.uploads++
	if m.err != nil {
		return m.err
	}
	m.width, m.height = width, height
	m.pixels = append(m.pixels[:0], pixels...)
	return nil
}

func TestImageBuffer_ResizeSameSizeKeepsFrame(t *testing.T) {
	buffer := NewImageBuffer(4, 3)
	buffer.SetPixel(2, 1, 0xFF123456)
	before := &buffer.Pixels()[0]

	for i := 0; i < 2; i++ {
		if buffer.Resize(4, 3) {
			t.Fatalf("Resize to the same size reported a reallocation (call %d)", i+1)
		}
	}

	if &buffer.Pixels()[0] != before {
		t.Error("Resize to the same size reallocated the pixel array")
	}
	if got := buffer.Pixel(2, 1); got != 0xFF123456 {
		t.Errorf("Expected pixel to survive resize, got %#08x", got)
	}
}

func TestImageBuffer_ResizeNewSizeReallocates(t *testing.T) {
	buffer := NewImageBuffer(4, 3)
	buffer.SetPixel(0, 0, 0xFFFFFFFF)

	if !buffer.Resize(2, 5) {
		t.Fatal("Expected Resize to a new size to reallocate")
	}
	if buffer.Width() != 2 || buffer.Height() != 5 {
		t.Errorf("Expected 2x5, got %dx%d", buffer.Width(), buffer.Height())
	}
	if len(buffer.Pixels()) != 10 {
		t.Errorf("Expected 10 pixels, got %d", len(buffer.Pixels()))
	}
	for i, p := range buffer.Pixels() {
		if p != 0 {
			t.Errorf("Expected zeroed pixel %d, got %#08x", i, p)
		}
	}
}

func TestImageBuffer_DegenerateSizes(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		expectedWidth  int
		expectedHeight int
	}{
		{"zero", 0, 0, 0, 0},
		{"zero width", 0, 7, 0, 7},
		{"negative", -3, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buffer ImageBuffer
			buffer.Resize(tt.width, tt.height)

			if buffer.Width() != tt.expectedWidth || buffer.Height() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, buffer.Width(), buffer.Height())
			}
			if len(buffer.Pixels()) != 0 {
				t.Errorf("Expected no pixels, got %d", len(buffer.Pixels()))
			}
		})
	}
}

func TestImageBuffer_RowMajorLayout(t *testing.T) {
	buffer := NewImageBuffer(3, 2)
	buffer.SetPixel(1, 1, 42)

	if got := buffer.Pixels()[1+1*3]; got != 42 {
		t.Errorf("Expected pixel at index x+y*width, got %d", got)
	}
}

func TestImageBuffer_Commit(t *testing.T) {
	buffer := NewImageBuffer(2, 2)
	buffer.SetPixel(1, 0, PackRGBA(core.NewVec3(1, 0, 1), 1))

	surface := &MockSurface{}
	if err := buffer.Commit(surface); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if surface.width != 2 || surface.height != 2 || len(surface.pixels) != 4 {
		t.Fatalf("Surface received %dx%d with %d pixels", surface.width, surface.height, len(surface.pixels))
	}
	if surface.pixels[1] != 0xFFFF00FF {
		t.Errorf("Expected uploaded pixel 0xffff00ff, got %#08x", surface.pixels[1])
	}
}

func TestImageBuffer_CommitWrapsError(t *testing.T) {
	errLost := errors.New("device lost")
	surface := &MockSurface{err: errLost}

	err := NewImageBuffer(1, 1).Commit(surface)
	if !errors.Is(err, errLost) {
		t.Errorf("Expected wrapped surface error, got %v", err)
	}
}

func TestImageBuffer_ToRGBA(t *testing.T) {
	buffer := NewImageBuffer(2, 1)
	buffer.SetPixel(0, 0, PackRGBA(core.NewVec3(1, 0, 1), 1))
	buffer.SetPixel(1, 0, PackRGBA(core.NewVec3(0, 0.5, 0), 1))

	img := buffer.ToRGBA()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}

	expected := []byte{255, 0, 255, 255, 0, 127, 0, 255}
	for i, b := range expected {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d]: expected %d, got %d", i, b, img.Pix[i])
		}
	}
	if c := img.RGBAAt(1, 0); c.G != 127 || c.A != 255 {
		t.Errorf("Expected RGBAAt to see green 127, got %+v", c)
	}
}

func TestImageBuffer_AppendRGBA_Reuse(t *testing.T) {
	buffer := NewImageBuffer(1, 1)
	buffer.SetPixel(0, 0, 0x04030201)

	dst := make([]byte, 0, 16)
	dst = buffer.AppendRGBA(dst)
	dst = buffer.AppendRGBA(dst)

	expected := []byte{1, 2, 3, 4, 1, 2, 3, 4}
	if string(dst) != string(expected) {
		t.Errorf("Expected %v, got %v", expected, dst)
	}
}
