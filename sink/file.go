package sink

import (
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures rotation for a File backend. Zero values are
// passed through to lumberjack and take its defaults: a zero MaxSizeMB
// rotates at lumberjack's default of 100 megabytes, and zero MaxAgeDays
// and MaxBackups keep old files regardless of age or count.
type FileConfig struct {
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// FileSink writes to a file the library owns, rotating it via
// lumberjack.Logger rather than hand-rolled rotate/cleanup logic.
type FileSink struct {
	path string
	lj   *lumberjack.Logger
}

// NewFile creates a FileSink for path with the given rotation policy.
func NewFile(path string, cfg FileConfig) *FileSink {
	return &FileSink{
		path: path,
		lj: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
		},
	}
}

// Open creates the target directory if it does not exist; it does not
// check that the directory is writable. The file itself is opened
// lazily by lumberjack on the first Write, matching
// how lumberjack.Logger is normally used.
func (f *FileSink) Open() error {
	dir := filepath.Dir(f.path)
	return os.MkdirAll(dir, 0o755)
}

func (f *FileSink) Write(p []byte) (int, error) { return f.lj.Write(p) }
func (f *FileSink) Close() error                { return f.lj.Close() }
func (f *FileSink) Unsupported() bool           { return false }
func (f *FileSink) Synchronous() bool           { return false }
