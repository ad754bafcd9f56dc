package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dynamolab/dl-course-site/internal/models"
	"github.com/dynamolab/dl-course-site/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// mockModuleService is a mock implementation of ModuleService
type mockModuleService struct {
	total int
}

func (m *mockModuleService) RenderModulePage(id int) *models.Page {
	return &models.Page{Kind: models.PageKindModule, ModuleNumber: id, Metadata: models.Metadata{Title: fmt.Sprintf("Module %d", id)}}
}

func (m *mockModuleService) GetCourseIndex() *models.CourseIndex {
	index := &models.CourseIndex{Course: models.Course{Title: "Deep Learning"}}
	for n := 1; n <= m.total; n++ {
		index.Modules = append(index.Modules, models.CourseIndexItem{ModuleNumber: n})
	}
	return index
}

func (m *mockModuleService) TotalModules() int {
	return m.total
}

// mockPageRenderer is a mock implementation of PageRenderer
type mockPageRenderer struct {
	err error
}

func (m *mockPageRenderer) RenderPage(w io.Writer, page *models.Page) error {
	if m.err != nil {
		return m.err
	}
	_, err := fmt.Fprintf(w, "page %d", page.ModuleNumber)
	return err
}

func (m *mockPageRenderer) RenderIndex(w io.Writer, index *models.CourseIndex) error {
	_, err := io.WriteString(w, "index")
	return err
}

func (m *mockPageRenderer) RenderNotFound(w io.Writer) error {
	_, err := io.WriteString(w, "not found")
	return err
}

// failingDestination is a mock implementation of Destination failing for one file
type failingDestination struct {
	Destination
	failOn string
}

func (d *failingDestination) Create(name string) (io.WriteCloser, error) {
	if name == d.failOn {
		return nil, errors.New("disk full")
	}
	return d.Destination.Create(name)
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

func TestExporter_Run(t *testing.T) {
	outDir := t.TempDir()
	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "11.2 PEFT.pdf"), []byte("pdf"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(assetsDir, "img"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "img", "logo.png"), []byte("png"), 0644))

	exporter := New(&mockModuleService{total: 12}, &mockPageRenderer{}, zap.NewNop())

	result, err := exporter.Run(context.Background(), storage.NewLocalStorage(outDir), storage.NewLocalStorage(assetsDir))

	require.NoError(t, err)
	assert.Equal(t, 15, result.Pages)
	assert.Equal(t, 2, result.Assets)

	assert.Equal(t, "index", readFile(t, outDir, "index.html"))
	assert.Equal(t, "not found", readFile(t, outDir, "404.html"))
	for id := 1; id <= 12; id++ {
		assert.Equal(t, fmt.Sprintf("page %d", id), readFile(t, outDir, fmt.Sprintf("module/%d/index.html", id)))
	}
	assert.NoFileExists(t, filepath.Join(outDir, "module", "13", "index.html"))
	assert.Equal(t, "pdf", readFile(t, outDir, "11.2 PEFT.pdf"))
	assert.Equal(t, "png", readFile(t, outDir, "img/logo.png"))

	var index models.CourseIndex
	require.NoError(t, json.Unmarshal([]byte(readFile(t, outDir, "api/modules.json")), &index))
	assert.Equal(t, "Deep Learning", index.Course.Title)
	assert.Len(t, index.Modules, 12)
}

func TestExporter_Run_AssetNamedLikePage(t *testing.T) {
	outDir := t.TempDir()
	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "index.html"), []byte("stale index"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "404.html"), []byte("stale 404"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(assetsDir, "module", "3"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "module", "3", "index.html"), []byte("stale page"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(assetsDir, "api"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "api", "modules.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "module", "3", "notes.pdf"), []byte("pdf"), 0644))

	core, logs := observer.New(zap.WarnLevel)
	exporter := New(&mockModuleService{total: 3}, &mockPageRenderer{}, zap.New(core))

	result, err := exporter.Run(context.Background(), storage.NewLocalStorage(outDir), storage.NewLocalStorage(assetsDir))

	require.NoError(t, err)
	assert.Equal(t, 6, result.Pages)
	assert.Equal(t, 1, result.Assets)
	assert.Equal(t, []string{"404.html", "api/modules.json", "index.html", "module/3/index.html"}, result.Skipped)

	assert.Equal(t, "index", readFile(t, outDir, "index.html"))
	assert.Equal(t, "not found", readFile(t, outDir, "404.html"))
	assert.Equal(t, "page 3", readFile(t, outDir, "module/3/index.html"))
	assert.NotEqual(t, "{}", readFile(t, outDir, "api/modules.json"))
	assert.Equal(t, "pdf", readFile(t, outDir, "module/3/notes.pdf"))
	assert.Equal(t, 4, logs.FilterMessage("asset shadowed by a generated page, not copied").Len())
}

func TestExporter_Run_NoAssets(t *testing.T) {
	outDir := t.TempDir()
	exporter := New(&mockModuleService{total: 3}, &mockPageRenderer{}, zap.NewNop()).WithConcurrency(1)

	result, err := exporter.Run(context.Background(), storage.NewLocalStorage(outDir), nil)

	require.NoError(t, err)
	assert.Equal(t, 6, result.Pages)
	assert.Equal(t, 0, result.Assets)
}

func TestExporter_Run_Errors(t *testing.T) {
	tests := []struct {
		name          string
		renderer      *mockPageRenderer
		failOn        string
		errorContains string
	}{
		{
			name:          "render failure",
			renderer:      &mockPageRenderer{err: errors.New("template error")},
			errorContains: "failed to write module/1/index.html",
		},
		{
			name:          "create failure",
			renderer:      &mockPageRenderer{},
			failOn:        "module/3/index.html",
			errorContains: "failed to create module/3/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &failingDestination{Destination: storage.NewLocalStorage(t.TempDir()), failOn: tt.failOn}
			exporter := New(&mockModuleService{total: 3}, tt.renderer, zap.NewNop()).WithConcurrency(1)

			result, err := exporter.Run(context.Background(), out, nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Nil(t, result)
		})
	}
}

func TestExporter_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exporter := New(&mockModuleService{total: 12}, &mockPageRenderer{}, zap.NewNop())

	result, err := exporter.Run(ctx, storage.NewLocalStorage(t.TempDir()), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestExporter_WithConcurrency(t *testing.T) {
	exporter := New(&mockModuleService{}, &mockPageRenderer{}, zap.NewNop())
	assert.Equal(t, DefaultConcurrency, exporter.concurrency)
	assert.Equal(t, 1, exporter.WithConcurrency(0).concurrency)
	assert.Equal(t, 4, exporter.WithConcurrency(4).concurrency)
}
