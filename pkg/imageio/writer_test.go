package imageio

import "testing"

func TestForPath(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{"PNG", "out/frame.png", "png"},
		{"PNG uppercase", "FRAME.PNG", "png"},
		{"No extension defaults to PNG", "frame", "png"},
		{"PPM", "frame.ppm", "ppm"},
		{"QOI", "render.qoi", "qoi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ForPath(tc.path)
			if err != nil {
				t.Fatalf("ForPath(%q) failed: %v", tc.path, err)
			}
			if w.Extension() != tc.expected {
				t.Errorf("Expected %s writer for %q, got %s", tc.expected, tc.path, w.Extension())
			}
		})
	}
}

func TestForPath_UnknownExtension(t *testing.T) {
	if _, err := ForPath("frame.bmp"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
