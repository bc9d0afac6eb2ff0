package corpus

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
)

//go:embed assets/quotes.json
var assets embed.FS

const assetPath = "assets/quotes.json"

// FSReader reads the corpus from a file inside an fs.FS.
type FSReader struct {
	name   string
	fsys   fs.FS
	path   string
	logger *slog.Logger
}

// NewFSReader creates a reader for path inside fsys.
func NewFSReader(name string, fsys fs.FS, path string, logger *slog.Logger) *FSReader {
	if logger == nil {
		logger = slog.Default()
	}

	return &FSReader{
		name:   name,
		fsys:   fsys,
		path:   path,
		logger: logger,
	}
}

// NewAssetReader returns the reader for the corpus compiled into the binary.
func NewAssetReader(logger *slog.Logger) *FSReader {
	return NewFSReader("asset", assets, assetPath, logger)
}

// Name implements ports.ResourceReader.
func (r *FSReader) Name() string {
	return r.name
}

// ReadCorpusBytes implements ports.ResourceReader.
func (r *FSReader) ReadCorpusBytes(ctx context.Context) ([]byte, bool) {
	data, err := fs.ReadFile(r.fsys, r.path)
	if err != nil {
		traceUnavailable(ctx, r.logger, r.name, err)
		return nil, false
	}

	return data, true
}

// FileReader reads the corpus from a path on the local filesystem.
// Relative paths resolve against the working directory.
type FileReader struct {
	path   string
	logger *slog.Logger
}

// NewFileReader creates a reader for path.
func NewFileReader(path string, logger *slog.Logger) *FileReader {
	if logger == nil {
		logger = slog.Default()
	}

	return &FileReader{path: path, logger: logger}
}

// Name implements ports.ResourceReader.
func (r *FileReader) Name() string {
	return "file:" + r.path
}

// ReadCorpusBytes implements ports.ResourceReader.
func (r *FileReader) ReadCorpusBytes(ctx context.Context) ([]byte, bool) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		traceUnavailable(ctx, r.logger, r.Name(), err)
		return nil, false
	}

	return data, true
}

func traceUnavailable(ctx context.Context, logger *slog.Logger, source string, err error) {
	logger.Log(ctx, logging.LevelTrace, "corpus source unavailable",
		slog.String("source", source),
		slog.Any("error", err),
	)
}
