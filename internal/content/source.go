// Package content holds the authored course content table and its YAML loader
package content

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dynamolab/dl-course-site/internal/models"
	"gopkg.in/yaml.v3"
)

// EmbeddedFile is the name of the content table compiled into the binary
const EmbeddedFile = "modules.yaml"

//go:embed modules.yaml
var embeddedFS embed.FS

// document is the on-disk shape of a content file
type document struct {
	Course  models.Course   `yaml:"course"`
	Modules []models.Module `yaml:"modules"`
}

// YAMLSource reads the course content table from a YAML document.
// The document is parsed once and cached; later calls return the same result.
type YAMLSource struct {
	fsys fs.FS
	path string

	once sync.Once
	doc  *document
	err  error
}

// NewYAMLSource creates a source reading "path" from "fsys"
func NewYAMLSource(fsys fs.FS, path string) *YAMLSource {
	return &YAMLSource{
		fsys: fsys,
		path: path,
	}
}

// NewEmbeddedSource creates a source over the content table compiled into the binary
func NewEmbeddedSource() *YAMLSource {
	return NewYAMLSource(embeddedFS, EmbeddedFile)
}

// NewFileSource creates a source over a YAML file on the local filesystem
func NewFileSource(path string) *YAMLSource {
	return NewYAMLSource(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// GetAll returns every module in the document in authored order
func (s *YAMLSource) GetAll(ctx context.Context) ([]models.Module, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	modules := make([]models.Module, len(doc.Modules))
	copy(modules, doc.Modules)
	return modules, nil
}

// Course returns the course framing of the document
func (s *YAMLSource) Course(ctx context.Context) (models.Course, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return models.Course{}, err
	}
	return doc.Course, nil
}

func (s *YAMLSource) load(ctx context.Context) (*document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.once.Do(func() {
		s.doc, s.err = s.parse()
	})
	return s.doc, s.err
}

func (s *YAMLSource) parse() (*document, error) {
	data, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", s.path, err)
	}
	doc, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", s.path, err)
	}
	return doc, nil
}

// decode parses a content document. Unknown keys are rejected so authoring typos surface at load time.
func decode(r io.Reader) (*document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}
