package gallery_test

import (
	"encoding/base64"
	"errors"
	"image/color"
	"testing"

	"birchwood/internal/contenttest"
	"birchwood/internal/domain"
	"birchwood/internal/gallery"
)

func TestDecodeImageData(t *testing.T) {
	png := contenttest.PNG(2, 2, color.Black)
	b64 := base64.StdEncoding.EncodeToString(png)

	src, err := gallery.DecodeImageData("data:image/png;base64," + b64)
	if err != nil || src.MIME != "image/png" || len(src.Data) != len(png) || src.Remote() {
		t.Fatalf("data uri: %+v, %v", src, err)
	}

	src, err = gallery.DecodeImageData(b64)
	if err != nil || src.MIME != "image/png" {
		t.Fatalf("bare base64: %+v, %v", src.MIME, err)
	}

	src, err = gallery.DecodeImageData("https://cdn.example.org/lake.jpg")
	if err != nil || !src.Remote() || src.URL != "https://cdn.example.org/lake.jpg" {
		t.Fatalf("url: %+v, %v", src, err)
	}

	src, err = gallery.DecodeImageData("data:text/plain,hello%20lake")
	if err != nil || string(src.Data) != "hello lake" {
		t.Fatalf("plain data uri: %+v, %v", src, err)
	}

	if _, err := gallery.DecodeImageData("  "); !errors.Is(err, gallery.ErrNoImageData) {
		t.Fatalf("empty: %v", err)
	}
	if _, err := gallery.DecodeImageData("!!not base64!!"); err == nil {
		t.Fatal("garbage should fail")
	}
}

func TestThumbnail_LazyAndMemoized(t *testing.T) {
	c := gallery.NewCatalog()
	c.Load(domain.Images{
		{ID: "wide", ImageData: contenttest.PNGDataURI(40, 20, color.White)},
		{ID: "small", ImageData: contenttest.PNGDataURI(4, 4, color.White)},
		{ID: "remote", ImageData: "https://cdn.example.org/x.jpg"},
	})
	if c.Decoded() != 0 {
		t.Fatal("nothing should be decoded before first access")
	}

	thumb, err := c.Thumbnail("wide", 10)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("thumb bounds = %v, want 10x5", b)
	}
	again, _ := c.Thumbnail("wide", 10)
	if again != thumb {
		t.Fatal("thumbnail should be memoized")
	}
	if small, err := c.Thumbnail("small", 10); err != nil || small.Bounds().Dx() != 4 {
		t.Fatalf("small image should not be upscaled: %v", err)
	}
	if _, err := c.Thumbnail("remote", 10); !errors.Is(err, gallery.ErrRemoteImage) {
		t.Fatalf("remote: %v", err)
	}
	if _, err := c.Thumbnail("missing", 10); err == nil {
		t.Fatal("unknown id should fail")
	}
	if _, err := c.Thumbnail("wide", 0); err == nil {
		t.Fatal("zero width should fail")
	}
	if c.Decoded() != 3 {
		t.Fatalf("decoded = %d, want 3", c.Decoded())
	}
}

func TestLoad_EvictsVanishedPayloads(t *testing.T) {
	keep := contenttest.PNGDataURI(3, 3, color.White)
	c := gallery.NewCatalog()
	c.Load(domain.Images{
		{ID: "a", ImageData: keep},
		{ID: "b", ImageData: contenttest.PNGDataURI(5, 5, color.Black)},
	})
	if _, err := c.Source("a"); err != nil {
		t.Fatalf("Source(a): %v", err)
	}
	if _, err := c.Source("b"); err != nil {
		t.Fatalf("Source(b): %v", err)
	}

	c.Load(domain.Images{{ID: "a2", ImageData: keep}})
	if c.Decoded() != 1 {
		t.Fatalf("decoded after reload = %d, want 1", c.Decoded())
	}

	c.LoadFailed(domain.ErrNetworkUnavailable)
	if c.Decoded() != 0 {
		t.Fatalf("decoded after failure = %d, want 0", c.Decoded())
	}
}
