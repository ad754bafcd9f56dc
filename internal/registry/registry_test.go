package registry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dynamolab/dl-course-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockModuleSource is a mock implementation of ModuleSource
type mockModuleSource struct {
	modules []models.Module
	err     error
}

func (m *mockModuleSource) GetAll(ctx context.Context) ([]models.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.modules, nil
}

func module(n int, title string) models.Module {
	return models.Module{
		ModuleNumber: n,
		Metadata:     models.Metadata{Title: title},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		modules       []models.Module
		expectedError bool
		errorContains string
		expectedLen   int
	}{
		{
			name:        "success",
			modules:     []models.Module{module(1, "One"), module(2, "Two")},
			expectedLen: 2,
		},
		{
			name:        "empty table",
			modules:     nil,
			expectedLen: 0,
		},
		{
			name:          "duplicate number",
			modules:       []models.Module{module(1, "One"), module(1, "Again")},
			expectedError: true,
			errorContains: "duplicate module number: 1",
		},
		{
			name:          "non-positive number",
			modules:       []models.Module{module(0, "Zero")},
			expectedError: true,
			errorContains: "invalid module number",
		},
		{
			name: "lecture without title",
			modules: []models.Module{{
				ModuleNumber: 4,
				Lectures:     []models.Lecture{{VideoID: "abc"}},
			}},
			expectedError: true,
			errorContains: "lecture title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.modules)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, r)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedLen, r.Len())
			}
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := New([]models.Module{module(1, "One"), module(5, "Five")})
	require.NoError(t, err)

	tests := []struct {
		name          string
		id            int
		expectedError error
		expectedTitle string
	}{
		{name: "present", id: 5, expectedTitle: "Five"},
		{name: "absent", id: 2, expectedError: ErrModuleNotFound},
		{name: "zero", id: 0, expectedError: ErrModuleNotFound},
		{name: "negative", id: -3, expectedError: ErrModuleNotFound},
		{name: "far out of range", id: 1000, expectedError: ErrModuleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Get(tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, m)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTitle, m.Metadata.Title)
			}
		})
	}
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	r, err := New([]models.Module{module(1, "One")})
	require.NoError(t, err)

	m, err := r.Get(1)
	require.NoError(t, err)
	m.Metadata.Title = "changed"

	again, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "One", again.Metadata.Title)
}

func TestRegistry_DoesNotShareSlices(t *testing.T) {
	input := []models.Module{{
		ModuleNumber: 3,
		Lectures: []models.Lecture{{
			Title:      "Lecture 3",
			Readings:   []models.Reading{{Label: "Notes", URL: "https://example.com/notes"}},
			ColabLinks: []models.ColabLink{{Label: "Lab", URL: "https://colab.research.google.com/a"}},
		}},
		Readings:      []models.Reading{{Label: "Book", URL: "https://d2l.ai"}},
		PDFPreview:    &models.PDFPreview{Title: "Slides", Src: "/slides.pdf"},
		ExtraSections: []models.ExtraSection{{Title: "Project", Links: []models.ColabLink{{Label: "Starter", URL: "https://example.com/s"}}}},
	}}
	r, err := New(input)
	require.NoError(t, err)

	// caller edits its own records after New
	input[0].Lectures[0].Title = "changed"
	input[0].Readings[0].URL = "https://example.com/changed"

	m, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Lecture 3", m.Lectures[0].Title)
	assert.Equal(t, "https://d2l.ai", m.Readings[0].URL)

	// consumer edits a looked-up module
	m.Lectures[0].Title = "changed"
	m.Lectures[0].Readings[0].Label = "changed"
	m.Lectures[0].ColabLinks[0].URL = "https://example.com/changed"
	m.PDFPreview.Src = "/changed.pdf"
	m.ExtraSections[0].Links[0].Label = "changed"

	again, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Lecture 3", again.Lectures[0].Title)
	assert.Equal(t, "Notes", again.Lectures[0].Readings[0].Label)
	assert.Equal(t, "https://colab.research.google.com/a", again.Lectures[0].ColabLinks[0].URL)
	assert.Equal(t, "/slides.pdf", again.PDFPreview.Src)
	assert.Equal(t, "Starter", again.ExtraSections[0].Links[0].Label)

	listed := r.List()
	listed[0].Readings[0].Label = "changed"
	assert.Equal(t, "Book", r.List()[0].Readings[0].Label)
}

func TestRegistry_ListSortedAscending(t *testing.T) {
	r, err := New([]models.Module{module(9, "Nine"), module(2, "Two"), module(12, "Twelve"), module(5, "Five")})
	require.NoError(t, err)

	var numbers []int
	for _, m := range r.List() {
		numbers = append(numbers, m.ModuleNumber)
	}

	assert.Equal(t, []int{2, 5, 9, 12}, numbers)
}

func TestLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		src := &mockModuleSource{modules: []models.Module{module(3, "Three")}}

		r, err := Load(context.Background(), src)

		require.NoError(t, err)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("source error", func(t *testing.T) {
		src := &mockModuleSource{err: errors.New("database error")}

		r, err := Load(context.Background(), src)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load modules")
		assert.Nil(t, r)
	})
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r, err := New([]models.Module{module(1, "One"), module(2, "Two")})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, _ = r.Get(id%3 + 1)
			_ = r.List()
		}(i)
	}
	wg.Wait()
}
