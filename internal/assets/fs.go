package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // Sprites ship as PNG
	"io/fs"
	"os"
)

// FS fetches assets from a file system, decoding them with the registered image codecs.
type FS struct {
	Root fs.FS
}

// Dir returns a fetcher reading from a directory on disk.
func Dir(root string) FS {
	return FS{Root: os.DirFS(root)}
}

// Fetch opens and decodes the named file.
func (f FS) Fetch(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := f.Root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
