package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const filePattern = "generated_image_%d.png"

// Counter hands out candidate file indexes shared across processes.
type Counter interface {
	Next(ctx context.Context) (int64, error)
}

// Writer stores images as generated_image_<n>.png in a single directory. Files are created
// exclusively, so two writers racing on the same index never overwrite each other: the
// loser moves on to the next candidate.
type Writer struct {
	dir     string
	counter Counter
}

// NewWriter scans forward from index 1 on every write and takes the first free index.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// NewCountingWriter draws candidate indexes from counter instead of scanning.
func NewCountingWriter(dir string, counter Counter) *Writer {
	return &Writer{dir: dir, counter: counter}
}

func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) Write(ctx context.Context, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	next := w.scan()
	if w.counter != nil {
		next = w.counter.Next
	}

	for {
		index, err := next(ctx)
		if err != nil {
			return "", fmt.Errorf("allocate image index: %w", err)
		}

		path := filepath.Join(w.dir, fmt.Sprintf(filePattern, index))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create image file: %w", err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("write image file: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("close image file: %w", err)
		}

		return path, nil
	}
}

func (w *Writer) scan() func(context.Context) (int64, error) {
	var i int64
	return func(ctx context.Context) (int64, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		i++
		return i, nil
	}
}
