// Package export writes the whole site as static files, one directory per page
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync/atomic"

	"github.com/dynamolab/dl-course-site/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many files are written at once
const DefaultConcurrency = 8

// ModuleService is the interface that wraps methods the export reads pages from
type ModuleService interface {
	RenderModulePage(id int) *models.Page
	GetCourseIndex() *models.CourseIndex
	TotalModules() int
}

// PageRenderer is the interface that wraps HTML projection of pages
type PageRenderer interface {
	RenderPage(w io.Writer, page *models.Page) error
	RenderIndex(w io.Writer, index *models.CourseIndex) error
	RenderNotFound(w io.Writer) error
}

// Destination is where exported files are created
type Destination interface {
	Create(name string) (io.WriteCloser, error)
}

// AssetSource lists and opens static files to copy along with the pages
type AssetSource interface {
	Files() ([]string, error)
	OpenFile(name string) (*os.File, error)
}

// Result summarizes a finished export
type Result struct {
	Pages  int
	Assets int
	// Skipped lists assets not copied because a generated page has the same name
	Skipped []string
}

// Exporter renders every page of the site into a Destination
type Exporter struct {
	service     ModuleService
	renderer    PageRenderer
	logger      *zap.Logger
	concurrency int
}

// New creates a new exporter
func New(service ModuleService, renderer PageRenderer, logger *zap.Logger) *Exporter {
	return &Exporter{
		service:     service,
		renderer:    renderer,
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
}

// WithConcurrency sets the number of files written in parallel; values below 1 mean 1
func (e *Exporter) WithConcurrency(n int) *Exporter {
	if n < 1 {
		n = 1
	}
	e.concurrency = n
	return e
}

// Run writes index.html, module/N/index.html for every N in the course, 404.html, api/modules.json
// and a copy of every asset. Generated pages take precedence over assets of the same name.
// The first failure cancels the remaining work.
func (e *Exporter) Run(ctx context.Context, out Destination, assets AssetSource) (*Result, error) {
	var assetFiles []string
	if assets != nil {
		files, err := assets.Files()
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		assetFiles = files
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	var pages, copied int32
	generated := make(map[string]struct{})
	write := func(name string, fn func(io.Writer) error) {
		generated[name] = struct{}{}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := writeFile(out, name, fn); err != nil {
				return err
			}
			atomic.AddInt32(&pages, 1)
			e.logger.Debug("exported page", zap.String("file", name))
			return nil
		})
	}

	index := e.service.GetCourseIndex()
	write("index.html", func(w io.Writer) error {
		return e.renderer.RenderIndex(w, index)
	})
	write("404.html", e.renderer.RenderNotFound)
	for id := 1; id <= e.service.TotalModules(); id++ {
		page := e.service.RenderModulePage(id)
		write(fmt.Sprintf("module/%d/index.html", id), func(w io.Writer) error {
			return e.renderer.RenderPage(w, page)
		})
	}
	write("api/modules.json", func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(index)
	})

	var skipped []string
	for _, name := range assetFiles {
		if _, ok := generated[outputName(name)]; ok {
			e.logger.Warn("asset shadowed by a generated page, not copied", zap.String("file", name))
			skipped = append(skipped, name)
			continue
		}
		name := name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := copyAsset(out, assets, name); err != nil {
				return err
			}
			atomic.AddInt32(&copied, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	result := &Result{Pages: int(pages), Assets: int(copied), Skipped: skipped}
	e.logger.Info("site exported",
		zap.Int("pages", result.Pages),
		zap.Int("assets", result.Assets),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// outputName is the destination-relative name a file ends up under
func outputName(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

func writeFile(out Destination, name string, fn func(io.Writer) error) (err error) {
	f, err := out.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func copyAsset(out Destination, assets AssetSource, name string) error {
	src, err := assets.OpenFile(name)
	if err != nil {
		return fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	defer src.Close()

	return writeFile(out, name, func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	})
}
