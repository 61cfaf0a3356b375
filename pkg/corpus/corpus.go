package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/ghsa-tools/ghsa-db/internal/log"
)

// Opener lazily yields the raw bytes of one advisory document.
type Opener struct {
	fs   afero.Fs
	Path string
}

func NewOpener(fs afero.Fs, path string) Opener {
	return Opener{fs: fs, Path: path}
}

func (o Opener) Open() (io.ReadCloser, error) {
	f, err := o.fs.Open(o.Path)
	if err != nil {
		return nil, &ReadError{Path: o.Path, Cause: err}
	}
	return f, nil
}

func (o Opener) String() string {
	return o.Path
}

// Openers enumerates all advisory documents under root (recursing through
// subdirectories) and returns a channel of openers plus the total count.
// Paths are yielded in lexical order so that failure reports are reproducible
// across runs. An unreadable subtree is logged and skipped; it does not stop
// enumeration of siblings.
func Openers(fs afero.Fs, root string) (<-chan Opener, int64, error) {
	if exists, err := afero.DirExists(fs, root); err != nil {
		return nil, 0, fmt.Errorf("unable to access source directory %q: %w", root, err)
	} else if !exists {
		return nil, 0, fmt.Errorf("source directory %q does not exist", root)
	}

	var paths []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithFields("path", path, "error", err).Warn("unable to access path, skipping")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("unable to walk source directory %q: %w", root, err)
	}

	sort.Strings(paths)

	out := make(chan Opener)
	go func() {
		defer close(out)
		for _, p := range paths {
			out <- Opener{fs: fs, Path: p}
		}
	}()

	return out, int64(len(paths)), nil
}
