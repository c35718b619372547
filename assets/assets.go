// Package assets loads the game's images. Images are cached for the lifetime
// of a Cache; a missing or broken image is replaced by a placeholder.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"hash/fnv"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed images/*.png
var imageFS embed.FS

// Image names under images/.
const (
	PlayerImage      = "player.png"
	PortalImage      = "portal.png"
	CollectibleImage = "collectible.png"
	HazardImage      = "hazard.png"
)

// Cache owns loaded images. One is created per play session and dropped with
// it.
type Cache struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewCache() *Cache {
	return NewCacheFS(imageFS)
}

// NewCacheFS loads images from fsys instead of the embedded set.
func NewCacheFS(fsys fs.FS) *Cache {
	return &Cache{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Image returns the named image, loading it on first use. If it cannot be
// read or decoded a size x size placeholder is cached in its place.
func (c *Cache) Image(name string, size int) *ebiten.Image {
	if img, ok := c.cache[name]; ok {
		return img
	}

	img, err := c.load(name)
	if err != nil {
		log.Printf("Warning: Could not load image %s, using placeholder: %v", name, err)
		img = Placeholder(name, size)
	}
	c.cache[name] = img
	return img
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	for name, img := range c.cache {
		img.Deallocate()
		delete(c.cache, name)
	}
}

func (c *Cache) load(name string) (*ebiten.Image, error) {
	imgBytes, err := fs.ReadFile(c.fsys, path.Join("images", name))
	if err != nil {
		return nil, err
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Placeholder returns a solid square whose colour is derived from name, so
// the same missing image always looks the same.
func Placeholder(name string, size int) *ebiten.Image {
	if size <= 0 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	img.Fill(PlaceholderColor(name))
	return img
}

func PlaceholderColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 255}
}
