package blueberry

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Atlas slices a single source image into independently owned SpriteBuffers.
// Only the source dimensions are read at creation; pixels are decoded each
// time cells are extracted.
type Atlas struct {
	src    ImageSource
	name   string
	width  int
	height int

	buffers []*SpriteBuffer
	regions map[string]int
}

// NewAtlas reads the size of the named image from src. The atlas starts with
// no buffers.
func NewAtlas(src ImageSource, name string) (*Atlas, error) {
	w, h, err := src.Config(name)
	if err != nil {
		return nil, err
	}
	return &Atlas{src: src, name: name, width: w, height: h, regions: make(map[string]int)}, nil
}

// Name returns the source image name.
func (a *Atlas) Name() string { return a.name }

// Size returns the source image dimensions.
func (a *Atlas) Size() (int, int) { return a.width, a.height }

// Len returns the number of extracted buffers.
func (a *Atlas) Len() int { return len(a.buffers) }

// Buffers returns all extracted buffers in extraction order.
func (a *Atlas) Buffers() []*SpriteBuffer { return a.buffers }

// Slice cuts the source into a grid of cellW×cellH cells, row by row, and
// appends one buffer per cell. Partial cells on the right and bottom edges are
// dropped.
func (a *Atlas) Slice(cellW, cellH int) error {
	if cellW <= 0 || cellH <= 0 {
		return fmt.Errorf("blueberry: atlas %s cell %dx%d: %w", a.name, cellW, cellH, ErrInvalidSize)
	}
	cols, rows := a.width/cellW, a.height/cellH
	if cols == 0 || rows == 0 {
		return nil
	}

	img, err := a.decode()
	if err != nil {
		return err
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			a.buffers = append(a.buffers, extract(img, col*cellW, row*cellH, cellW, cellH))
		}
	}
	logger.Debug("atlas sliced",
		zap.String("atlas", a.name),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Int("total", len(a.buffers)))
	return nil
}

// Add extracts the w×h rectangle at (x, y) and appends it as a buffer.
func (a *Atlas) Add(x, y, w, h int) error {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > a.width || y+h > a.height {
		return fmt.Errorf("blueberry: atlas %s region (%d,%d %dx%d) outside %dx%d: %w",
			a.name, x, y, w, h, a.width, a.height, ErrInvalidSize)
	}
	img, err := a.decode()
	if err != nil {
		return err
	}
	a.buffers = append(a.buffers, extract(img, x, y, w, h))
	return nil
}

// AddNamed is Add that also registers the new buffer under name.
func (a *Atlas) AddNamed(name string, x, y, w, h int) error {
	if err := a.Add(x, y, w, h); err != nil {
		return err
	}
	a.regions[name] = len(a.buffers) - 1
	return nil
}

// Buffer returns the i-th extracted buffer.
func (a *Atlas) Buffer(i int) (*SpriteBuffer, error) {
	if i < 0 || i >= len(a.buffers) {
		return nil, fmt.Errorf("blueberry: atlas %s buffer %d of %d: %w", a.name, i, len(a.buffers), ErrIndexOutOfRange)
	}
	return a.buffers[i], nil
}

// Region returns the buffer registered under name.
func (a *Atlas) Region(name string) (*SpriteBuffer, bool) {
	i, ok := a.regions[name]
	if !ok {
		return nil, false
	}
	return a.buffers[i], true
}

func (a *Atlas) decode() (*DecodedImage, error) {
	img, err := a.src.Decode(a.name)
	if err != nil {
		return nil, err
	}
	if img.Width != a.width || img.Height != a.height {
		return nil, fmt.Errorf("blueberry: atlas %s changed size from %dx%d to %dx%d: %w",
			a.name, a.width, a.height, img.Width, img.Height, ErrDecode)
	}
	return img, nil
}

// extract copies the w×h block at (x, y) of img: destination (i, j) reads
// source (x+i, y+j).
func extract(img *DecodedImage, x, y, w, h int) *SpriteBuffer {
	s := NewSpriteBuffer(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			o := ((y+j)*img.Width + x + i) * 4
			s.pix[i+j*w] = Color{img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]}
		}
	}
	return s
}

// --- definitions ---

// AtlasDefinition describes how to cut an image, as stored in YAML or JSON.
//
//	image: dungeon_sheet.png
//	grid: {cell_width: 16, cell_height: 16}
//	regions:
//	  - {name: knight, x: 64, y: 112, w: 16, h: 16}
type AtlasDefinition struct {
	Image   string      `json:"image" yaml:"image"`
	Grid    *AtlasGrid  `json:"grid,omitempty" yaml:"grid,omitempty"`
	Regions []AtlasRect `json:"regions,omitempty" yaml:"regions,omitempty"`
}

// AtlasGrid is a uniform Slice applied before any named regions.
type AtlasGrid struct {
	CellWidth  int `json:"cell_width" yaml:"cell_width"`
	CellHeight int `json:"cell_height" yaml:"cell_height"`
}

// AtlasRect is one named rectangle of an AtlasDefinition.
type AtlasRect struct {
	Name string `json:"name" yaml:"name"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
	W    int    `json:"w" yaml:"w"`
	H    int    `json:"h" yaml:"h"`
}

// ParseAtlasDefinition decodes a definition from YAML. JSON documents are
// valid YAML and parse too.
func ParseAtlasDefinition(data []byte) (*AtlasDefinition, error) {
	var def AtlasDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("blueberry: failed to parse atlas definition: %w", err)
	}
	if def.Image == "" {
		return nil, fmt.Errorf("blueberry: atlas definition has no image")
	}
	return &def, nil
}

// LoadAtlasDefinition parses data and builds the atlas it describes: the grid
// first, then each named region in order.
func LoadAtlasDefinition(src ImageSource, data []byte) (*Atlas, error) {
	def, err := ParseAtlasDefinition(data)
	if err != nil {
		return nil, err
	}
	return def.Build(src)
}

// Build creates the atlas described by d.
func (d *AtlasDefinition) Build(src ImageSource) (*Atlas, error) {
	a, err := NewAtlas(src, d.Image)
	if err != nil {
		return nil, err
	}
	if d.Grid != nil {
		if err := a.Slice(d.Grid.CellWidth, d.Grid.CellHeight); err != nil {
			return nil, err
		}
	}
	for _, r := range d.Regions {
		if r.Name == "" {
			err = a.Add(r.X, r.Y, r.W, r.H)
		} else {
			err = a.AddNamed(r.Name, r.X, r.Y, r.W, r.H)
		}
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}
