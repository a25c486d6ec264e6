package blueberry

import (
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"os"
	"path"

	// Registered formats for FSSource.
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultAssetDir is where NewFileSource looks for sprite images by default.
const DefaultAssetDir = "assets/sprites"

// DecodedImage is a decoded image as row-major RGBA8 bytes
// (len(Pix) == Width*Height*4, straight alpha).
type DecodedImage struct {
	Width, Height int
	Pix           []byte
}

// ImageSource decodes named images. The core only ever asks for an image's
// size and its RGBA8 bytes; where the bytes come from is up to the source.
type ImageSource interface {
	// Config returns the dimensions of the named image without decoding
	// its pixels.
	Config(name string) (width, height int, err error)
	// Decode returns the full RGBA8 contents of the named image.
	Decode(name string) (*DecodedImage, error)
}

// FSSource decodes PNG, BMP and WebP images from a file system.
type FSSource struct {
	FS fs.FS
	// Dir is joined in front of every requested name.
	Dir string
}

// NewFileSource returns an FSSource reading from dir on the host file
// system. An empty dir means DefaultAssetDir.
func NewFileSource(dir string) *FSSource {
	if dir == "" {
		dir = DefaultAssetDir
	}
	return &FSSource{FS: os.DirFS(dir)}
}

func (s *FSSource) path(name string) string {
	if s.Dir == "" {
		return name
	}
	return path.Join(s.Dir, name)
}

// Config implements ImageSource.
func (s *FSSource) Config(name string) (int, int, error) {
	f, err := s.FS.Open(s.path(name))
	if err != nil {
		return 0, 0, fmt.Errorf("blueberry: open %s %w: %w", name, ErrDecode, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("blueberry: %s %w: %v", name, ErrDecode, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Decode implements ImageSource.
func (s *FSSource) Decode(name string) (*DecodedImage, error) {
	f, err := s.FS.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("blueberry: open %s %w: %w", name, ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("blueberry: %s %w: %v", name, ErrDecode, err)
	}
	return imageToRGBA8(img), nil
}

// imageToRGBA8 converts any image into straight-alpha RGBA8 bytes.
func imageToRGBA8(img image.Image) *DecodedImage {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &DecodedImage{Width: b.Dx(), Height: b.Dy(), Pix: nrgba.Pix}
}

// MemorySource serves already-decoded images, such as sheets generated at
// startup.
type MemorySource map[string]*DecodedImage

// Config implements ImageSource.
func (m MemorySource) Config(name string) (int, int, error) {
	img, err := m.lookup(name)
	if err != nil {
		return 0, 0, err
	}
	return img.Width, img.Height, nil
}

// Decode implements ImageSource. The returned pixels are a copy.
func (m MemorySource) Decode(name string) (*DecodedImage, error) {
	img, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return &DecodedImage{
		Width:  img.Width,
		Height: img.Height,
		Pix:    append([]byte(nil), img.Pix...),
	}, nil
}

func (m MemorySource) lookup(name string) (*DecodedImage, error) {
	img, ok := m[name]
	if !ok || img == nil {
		return nil, fmt.Errorf("blueberry: %s %w: no such image", name, ErrDecode)
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height*4 {
		return nil, fmt.Errorf("blueberry: %s %w: %dx%d with %d bytes",
			name, ErrDecode, img.Width, img.Height, len(img.Pix))
	}
	return img, nil
}

// AddImage stores img under name, converting it to RGBA8.
func (m MemorySource) AddImage(name string, img image.Image) {
	m[name] = imageToRGBA8(img)
}

// AddBuffer stores a copy of buf under name.
func (m MemorySource) AddBuffer(name string, buf ImageBuffer) {
	pix := make([]byte, 0, len(buf.Pixels())*4)
	for _, c := range buf.Pixels() {
		pix = append(pix, c.R, c.G, c.B, c.A)
	}
	m[name] = &DecodedImage{Width: buf.Width(), Height: buf.Height(), Pix: pix}
}

// LoadSprite decodes a whole named image into a SpriteBuffer.
func LoadSprite(src ImageSource, name string) (*SpriteBuffer, error) {
	img, err := src.Decode(name)
	if err != nil {
		return nil, err
	}
	return NewSpriteBufferRGBA(img.Width, img.Height, img.Pix)
}
