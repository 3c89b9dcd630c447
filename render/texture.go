package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	_ "golang.org/x/image/bmp"
)

// Texture is a 2D RGBA texture owned by a Loader.
type Texture struct {
	Handle Handle
	ID     uint32
	Path   string

	Width, Height int32
}

// LoadTexture decodes the image at name and uploads it as a texture.
func (loader *Loader) LoadTexture(fsys fs.FS, name string) (Texture, error) {
	if loader.released {
		return Texture{}, ErrReleased
	}

	file, err := fsys.Open(name)
	if err != nil {
		return Texture{}, fmt.Errorf("texture %q not found: %w", name, err)
	}
	defer file.Close()

	rgba, err := decodeRGBA(file)
	if err != nil {
		return Texture{}, fmt.Errorf("unable to decode texture %q: %w", name, err)
	}

	texture := Texture{
		Path:   name,
		Width:  int32(rgba.Rect.Dx()),
		Height: int32(rgba.Rect.Dy()),
	}

	texture.ID = loader.gl.GenTexture()
	texture.Handle = loader.objects.insert(TextureKind, texture.ID)
	loader.gl.BindTexture(0, texture.ID)
	loader.gl.TexImageRGBA(texture.Width, texture.Height, rgba.Pix)
	loader.gl.BindTexture(0, 0)

	loader.logger().Printf("loaded texture %q (%dx%d) as %d", name, texture.Width, texture.Height, texture.ID)
	return texture, nil
}

func decodeRGBA(r io.Reader) (*image.RGBA, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := m.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return nil, fmt.Errorf("unsupported stride")
	}
	draw.Draw(rgba, rgba.Bounds(), m, bounds.Min, draw.Src)
	return rgba, nil
}
