// Package registry holds the read-only mapping from module number to module content
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dynamolab/dl-course-site/internal/models"
)

// ErrModuleNotFound is returned when no module is registered under the requested number
var ErrModuleNotFound = errors.New("module not found")

// ModuleSource is the interface that wraps the method for reading authored modules
type ModuleSource interface {
	// GetAll retrieves every authored module.
	//
	// Order of the result is not significant; the registry sorts on its own.
	GetAll(ctx context.Context) ([]models.Module, error)
}

// Registry is an immutable module table built once at start-up.
// It keeps its own deep copies and hands out clones, so it is safe for concurrent use.
type Registry struct {
	modules map[int]models.Module
	sorted  []int
}

// New validates modules and builds a registry from them.
//
// Duplicate module numbers and invalid records are rejected.
func New(modules []models.Module) (*Registry, error) {
	r := &Registry{
		modules: make(map[int]models.Module, len(modules)),
		sorted:  make([]int, 0, len(modules)),
	}
	for i := range modules {
		m := modules[i]
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("invalid module: %w", err)
		}
		if _, exists := r.modules[m.ModuleNumber]; exists {
			return nil, fmt.Errorf("duplicate module number: %d", m.ModuleNumber)
		}
		r.modules[m.ModuleNumber] = m.Clone()
		r.sorted = append(r.sorted, m.ModuleNumber)
	}
	sort.Ints(r.sorted)
	return r, nil
}

// Load reads all modules from source and builds a registry from them
func Load(ctx context.Context, source ModuleSource) (*Registry, error) {
	modules, err := source.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load modules: %w", err)
	}
	return New(modules)
}

// Get retrieves a module by its number.
//
// The number is not range-checked; absence of the key is reported with ErrModuleNotFound.
func (r *Registry) Get(id int) (*models.Module, error) {
	m, ok := r.modules[id]
	if !ok {
		return nil, ErrModuleNotFound
	}
	clone := m.Clone()
	return &clone, nil
}

// List returns all modules sorted by module number ascending
func (r *Registry) List() []models.Module {
	modules := make([]models.Module, 0, len(r.sorted))
	for _, id := range r.sorted {
		modules = append(modules, r.modules[id].Clone())
	}
	return modules
}

// Len returns the number of registered modules
func (r *Registry) Len() int {
	return len(r.modules)
}
