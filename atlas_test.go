package blueberry

import (
	"errors"
	"strings"
	"testing"
)

// gradient returns a w×h buffer where every pixel is distinct.
func gradient(w, h int) *SpriteBuffer {
	s := NewSpriteBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetPixel(Color{uint8(x * 7), uint8(y * 7), uint8(x ^ y), 255}, x, y)
		}
	}
	return s
}

// countingSource counts Decode calls.
type countingSource struct {
	MemorySource
	decodes int
}

func (c *countingSource) Decode(name string) (*DecodedImage, error) {
	c.decodes++
	return c.MemorySource.Decode(name)
}

func TestAtlasSlice_Quadrants(t *testing.T) {
	sheet := gradient(32, 32)
	src := MemorySource{}
	src.AddBuffer("sheet.png", sheet)

	a, err := NewAtlas(src, "sheet.png")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Slice(16, 16); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 4 {
		t.Fatalf("Len = %d, want 4", a.Len())
	}

	origins := []Vec2i{{0, 0}, {16, 0}, {0, 16}, {16, 16}}
	for i, o := range origins {
		buf, err := a.Buffer(i)
		if err != nil {
			t.Fatal(err)
		}
		if buf.Width() != 16 || buf.Height() != 16 {
			t.Fatalf("buffer %d size = %dx%d, want 16x16", i, buf.Width(), buf.Height())
		}
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				want := sheet.Pixel(o.X+x, o.Y+y)
				if got := buf.Pixel(x, y); got != want {
					t.Fatalf("buffer %d (%d,%d) = %v, want %v", i, x, y, got, want)
				}
			}
		}
	}
}

func TestAtlasSlice_DropsPartialCells(t *testing.T) {
	src := MemorySource{}
	src.AddBuffer("s", gradient(40, 20))
	a, _ := NewAtlas(src, "s")
	if err := a.Slice(16, 16); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
}

func TestAtlasSlice_DecodesOnce(t *testing.T) {
	src := &countingSource{MemorySource: MemorySource{}}
	src.AddBuffer("s", gradient(32, 32))
	a, err := NewAtlas(src, "s")
	if err != nil {
		t.Fatal(err)
	}
	if src.decodes != 0 {
		t.Errorf("NewAtlas decoded %d times, want 0", src.decodes)
	}
	if err := a.Slice(8, 8); err != nil {
		t.Fatal(err)
	}
	if src.decodes != 1 {
		t.Errorf("Slice decoded %d times, want 1", src.decodes)
	}
}

func TestAtlasSlice_InvalidCell(t *testing.T) {
	src := MemorySource{}
	src.AddBuffer("s", gradient(4, 4))
	a, _ := NewAtlas(src, "s")
	if err := a.Slice(0, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestAtlasAdd_Rectangle(t *testing.T) {
	sheet := gradient(10, 10)
	src := MemorySource{}
	src.AddBuffer("s", sheet)
	a, _ := NewAtlas(src, "s")

	if err := a.Add(3, 2, 4, 5); err != nil {
		t.Fatal(err)
	}
	buf, _ := a.Buffer(0)
	if buf.Width() != 4 || buf.Height() != 5 {
		t.Fatalf("size = %dx%d, want 4x5", buf.Width(), buf.Height())
	}
	// destination (i, j) reads source (x+i, y+j)
	if got, want := buf.Pixel(3, 1), sheet.Pixel(6, 3); got != want {
		t.Errorf("buf(3,1) = %v, want source(6,3) %v", got, want)
	}
}

func TestAtlasAdd_OutsideSource(t *testing.T) {
	src := MemorySource{}
	src.AddBuffer("s", gradient(10, 10))
	a, _ := NewAtlas(src, "s")
	for _, r := range []Rect{{8, 0, 4, 4}, {-1, 0, 2, 2}, {0, 0, 0, 3}, {0, 9, 1, 2}} {
		if err := a.Add(r.X, r.Y, r.Width, r.Height); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Add(%v) err = %v, want ErrInvalidSize", r, err)
		}
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
}

func TestAtlasBuffer_OutOfRange(t *testing.T) {
	src := MemorySource{}
	src.AddBuffer("s", gradient(4, 4))
	a, _ := NewAtlas(src, "s")
	_ = a.Slice(2, 2)

	_, err := a.Buffer(4)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
	if !strings.Contains(err.Error(), "4 of 4") {
		t.Errorf("err = %q, want index and length", err)
	}
	if _, err := a.Buffer(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Buffer(-1) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestNewAtlas_MissingImage(t *testing.T) {
	if _, err := NewAtlas(MemorySource{}, "nope.png"); !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}

func TestAtlasBuffers_Independent(t *testing.T) {
	src := MemorySource{}
	src.AddBuffer("s", gradient(4, 2))
	a, _ := NewAtlas(src, "s")
	_ = a.Slice(2, 2)

	b0, _ := a.Buffer(0)
	b1, _ := a.Buffer(1)
	before := b1.Pixel(0, 0)
	b0.Fill(RGB(1, 1, 1))
	if b1.Pixel(0, 0) != before {
		t.Error("writing one buffer changed another")
	}
}

const testAtlasDef = `
image: sheet.png
grid: {cell_width: 8, cell_height: 8}
regions:
  - {name: wide, x: 0, y: 0, w: 16, h: 8}
  - {x: 8, y: 8, w: 8, h: 8}
`

func TestLoadAtlasDefinition(t *testing.T) {
	sheet := gradient(16, 16)
	src := MemorySource{}
	src.AddBuffer("sheet.png", sheet)

	a, err := LoadAtlasDefinition(src, []byte(testAtlasDef))
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 6 {
		t.Fatalf("Len = %d, want 4 grid cells + 2 regions", a.Len())
	}
	wide, ok := a.Region("wide")
	if !ok {
		t.Fatal("region wide not registered")
	}
	if wide.Width() != 16 || wide.Height() != 8 {
		t.Errorf("wide = %dx%d, want 16x8", wide.Width(), wide.Height())
	}
	last, _ := a.Buffer(5)
	if got, want := last.Pixel(0, 0), sheet.Pixel(8, 8); got != want {
		t.Errorf("unnamed region (0,0) = %v, want %v", got, want)
	}
	if _, ok := a.Region("missing"); ok {
		t.Error("Region(missing) ok = true")
	}
}

func TestParseAtlasDefinition_JSON(t *testing.T) {
	def, err := ParseAtlasDefinition([]byte(`{"image": "a.png", "grid": {"cell_width": 4, "cell_height": 2}}`))
	if err != nil {
		t.Fatal(err)
	}
	if def.Image != "a.png" || def.Grid == nil || def.Grid.CellWidth != 4 || def.Grid.CellHeight != 2 {
		t.Errorf("def = %+v, want a.png with 4x2 grid", def)
	}
}

func TestParseAtlasDefinition_Errors(t *testing.T) {
	if _, err := ParseAtlasDefinition([]byte("regions: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := ParseAtlasDefinition([]byte("grid: {cell_width: 4, cell_height: 4}")); err == nil {
		t.Error("expected error for missing image")
	}
}
