package camera

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"gocv.io/x/gocv"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// FileSource replays still images as camera frames, cycling forever.
// Used for dry runs and for testing the loops without a camera.
type FileSource struct {
	width, height int

	mu    sync.Mutex
	paths []string
	next  int
}

// NewFileSource expands each pattern with filepath.Glob and replays the
// matches in order. Frames are scaled to width x height.
func NewFileSource(width, height int, patterns ...string) (*FileSource, error) {
	var paths []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("frames %q: %w", p, err)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: nothing matched %v", ErrNoFrames, patterns)
	}

	return &FileSource{
		width:  width,
		height: height,
		paths:  paths,
	}, nil
}

// Paths returns the files in replay order.
func (f *FileSource) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

// Capture loads the next image.
func (f *FileSource) Capture() (vision.Frame, error) {
	f.mu.Lock()
	path := f.paths[f.next]
	f.next = (f.next + 1) % len(f.paths)
	f.mu.Unlock()

	img := gocv.IMRead(path, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return vision.Frame{}, fmt.Errorf("read %s: not an image", path)
	}

	return toFrame(img, f.width, f.height)
}

// Close implements Source.
func (f *FileSource) Close() error {
	return nil
}
