package gallery

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/crypto/blake2b"

	"birchwood/internal/domain"
)

var (
	// ErrNoImageData is returned for images without a payload.
	ErrNoImageData = errors.New("gallery: image has no data")
	// ErrRemoteImage is returned when bytes are needed for an image served by URL.
	ErrRemoteImage = errors.New("gallery: image is remote")
)

// ImageSource is a decoded imageData field: either a URL or inline bytes.
type ImageSource struct {
	URL  string
	Data []byte
	MIME string
}

// Remote reports whether the image must be loaded from URL.
func (s ImageSource) Remote() bool { return s.URL != "" }

// DecodeImageData interprets raw as an http(s) URL, a data URI or bare base64.
func DecodeImageData(raw string) (ImageSource, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ImageSource{}, ErrNoImageData
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		if _, err := url.Parse(raw); err != nil {
			return ImageSource{}, fmt.Errorf("gallery: image url: %w", err)
		}
		return ImageSource{URL: raw}, nil
	case strings.HasPrefix(raw, "data:"):
		return decodeDataURI(raw)
	default:
		b, err := decodeBase64(raw)
		if err != nil {
			return ImageSource{}, err
		}
		return ImageSource{Data: b, MIME: http.DetectContentType(b)}, nil
	}
}

func decodeDataURI(raw string) (ImageSource, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return ImageSource{}, fmt.Errorf("gallery: data uri without payload")
	}
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	var (
		b   []byte
		err error
	)
	if isBase64 {
		b, err = decodeBase64(payload)
	} else {
		var s string
		s, err = url.PathUnescape(payload)
		b = []byte(s)
	}
	if err != nil {
		return ImageSource{}, err
	}
	if mime == "" {
		mime = http.DetectContentType(b)
	}
	return ImageSource{Data: b, MIME: mime}, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' {
			return -1
		}
		return r
	}, s)
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("gallery: decode base64: %w", err)
	}
	return b, nil
}

type digest = [blake2b.Size256]byte

type cacheEntry struct {
	src    ImageSource
	err    error
	thumbs map[int]image.Image
}

// imageCache memoizes decoded payloads by the blake2b digest of imageData so
// that an unchanged image survives a refresh without being decoded again.
type imageCache struct {
	mu      sync.Mutex
	entries map[digest]*cacheEntry
}

func newImageCache() *imageCache {
	return &imageCache{entries: map[digest]*cacheEntry{}}
}

func (ic *imageCache) entry(raw string) *cacheEntry {
	key := blake2b.Sum256([]byte(raw))
	e, ok := ic.entries[key]
	if !ok {
		src, err := DecodeImageData(raw)
		e = &cacheEntry{src: src, err: err, thumbs: map[int]image.Image{}}
		ic.entries[key] = e
	}
	return e
}

func (ic *imageCache) source(raw string) (ImageSource, error) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	e := ic.entry(raw)
	return e.src, e.err
}

func (ic *imageCache) thumbnail(raw string, width int) (image.Image, error) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	e := ic.entry(raw)
	if e.err != nil {
		return nil, e.err
	}
	if e.src.Remote() {
		return nil, ErrRemoteImage
	}
	if t, ok := e.thumbs[width]; ok {
		return t, nil
	}
	img, err := imaging.Decode(bytes.NewReader(e.src.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("gallery: decode image: %w", err)
	}
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	e.thumbs[width] = img
	return img, nil
}

// retain drops entries whose payload is not part of images.
func (ic *imageCache) retain(images domain.Images) {
	keep := make(map[digest]struct{}, len(images))
	for _, img := range images {
		keep[blake2b.Sum256([]byte(img.ImageData))] = struct{}{}
	}
	ic.mu.Lock()
	defer ic.mu.Unlock()
	for k := range ic.entries {
		if _, ok := keep[k]; !ok {
			delete(ic.entries, k)
		}
	}
}

func (ic *imageCache) size() int {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return len(ic.entries)
}

// Source returns the decoded payload of image id, decoding it on first use.
func (c *Catalog) Source(id string) (ImageSource, error) {
	img, err := c.lookup(id)
	if err != nil {
		return ImageSource{}, err
	}
	return c.cache.source(img.ImageData)
}

// Thumbnail returns image id scaled down to at most width pixels wide,
// rendering it on first use. Remote images have no local thumbnail.
func (c *Catalog) Thumbnail(id string, width int) (image.Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("gallery: thumbnail width %d", width)
	}
	img, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	return c.cache.thumbnail(img.ImageData, width)
}

// Decoded returns how many image payloads are currently memoized.
func (c *Catalog) Decoded() int { return c.cache.size() }
