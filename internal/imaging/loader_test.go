package imaging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
)

func TestImageCache_LoadPNG(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteGallery(dir, 120)
	if err != nil {
		t.Fatalf("WriteGallery failed: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(paths[0])
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 120 {
		t.Errorf("Loaded dimensions: got %dx%d, want 120x120", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImageCache_CachesByPath(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteGallery(dir, 60)
	if err != nil {
		t.Fatalf("WriteGallery failed: %v", err)
	}

	cache := NewImageCache()
	first, err := cache.Load(paths[0])
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Remove the file; a cached load must still succeed.
	if err := os.Remove(paths[0]); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	second, err := cache.Load(paths[0])
	if err != nil {
		t.Fatalf("Cached load failed: %v", err)
	}
	if first != second {
		t.Error("Cached load should return the same image instance")
	}

	// After eviction the load must hit the (now missing) file and fail.
	cache.Evict(paths[0])
	if _, err := cache.Load(paths[0]); err == nil {
		t.Error("Load after eviction of a deleted file should fail")
	}
}

func TestImageCache_LoadMissingFile(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestImageCache_LoadWebP(t *testing.T) {
	src := GenerateShape(detect.Rectangle, 80)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Lossless: true}); err != nil {
		t.Fatalf("webp encode failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "square.webp")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load webp failed: %v", err)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 80 {
		t.Errorf("WebP dimensions: got %dx%d, want 80x80", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoadImageInfo(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteGallery(dir, 100)
	if err != nil {
		t.Fatalf("WriteGallery failed: %v", err)
	}

	info, err := LoadImageInfo(NewImageCache(), paths[0])
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 100 || info.Height != 100 {
		t.Errorf("Info dimensions: got %dx%d, want 100x100", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}
