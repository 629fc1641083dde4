package hcl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/neuratlas/internal/config"
	"github.com/vk/neuratlas/internal/ctxlog"
)

// AtlasExtension is the file suffix the loader searches directories for.
const AtlasExtension = ".hcl"

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL atlas loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the atlas at path, which may be a single .hcl file or a
// directory searched recursively, and returns the unified config model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading atlas files...", "path", path)

	files, err := findAtlasFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s atlas files found under %s", AtlasExtension, path)
	}
	logger.Debug("Found atlas files to load.", "files", files)

	model := &config.Model{}
	for _, filePath := range files {
		file, diags := l.parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, diags)
		}
		if err := l.decodeInto(ctx, model, file.Body, filePath); err != nil {
			return nil, err
		}
		logger.Debug("Successfully loaded atlas file.", "file", filePath)
	}

	logger.Info("Atlas loaded.", "components", len(model.Components), "stimuli", len(model.Stimuli))
	return model, nil
}

// LoadBytes parses an in-memory atlas, used for the embedded default
// fixture and for tests.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	model := &config.Model{}
	if err := l.decodeInto(ctx, model, file.Body, filename); err != nil {
		return nil, err
	}
	return model, nil
}

// findAtlasFiles resolves path to the list of atlas files it names: the
// path itself for a file, or every matching file under it for a directory.
func findAtlasFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("atlas path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), AtlasExtension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
