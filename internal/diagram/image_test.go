package diagram

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteImageCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfd.png")

	err := WriteImage(ShearSpec(), []float64{0, 2, 4}, []float64{10, -5, 0}, path)
	if err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("image file is empty")
	}
}

func TestWriteImageDefaultsToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmd")

	err := WriteImage(MomentSpec(), []float64{0, 2, 4}, []float64{0, 15, 0}, path)
	if err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if _, err := os.Stat(path + ".png"); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestWriteImageSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfd.svg")

	err := WriteImage(ShearSpec(), []float64{0, 1, 2, 3}, []float64{4, -2, -6, 1}, path)
	if err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestWriteImageCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "bmd.png")

	err := WriteImage(MomentSpec(), []float64{0, 5}, []float64{3, 12}, path)
	if err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
