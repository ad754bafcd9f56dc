// Package site wires content, registry, renderer and views from configuration
package site

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dynamolab/dl-course-site/internal/basepath"
	"github.com/dynamolab/dl-course-site/internal/config"
	"github.com/dynamolab/dl-course-site/internal/content"
	"github.com/dynamolab/dl-course-site/internal/models"
	"github.com/dynamolab/dl-course-site/internal/registry"
	"github.com/dynamolab/dl-course-site/internal/repositories"
	"github.com/dynamolab/dl-course-site/internal/services"
	"github.com/dynamolab/dl-course-site/internal/views"
	"github.com/dynamolab/dl-course-site/migrations"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// ModuleService is the interface that wraps everything the server and the export need from the module renderer
type ModuleService interface {
	RenderModulePage(id int) *models.Page
	GetModule(id int) (*models.Module, error)
	GetCourseIndex() *models.CourseIndex
	InRange(id int) bool
	TotalModules() int
}

// Site holds the wired read side of the course site
type Site struct {
	Base     basepath.BasePath
	Registry *registry.Registry
	Service  ModuleService
	Renderer *views.Renderer

	db *sql.DB
}

// Close releases the database connection, if any
func (s *Site) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the content table once and builds everything that serves it.
// Course framing always comes from the YAML table; modules come from CONTENT_SOURCE.
func Load(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Site, error) {
	yamlSource := content.NewEmbeddedSource()
	if cfg.Content.File != "" {
		yamlSource = content.NewFileSource(cfg.Content.File)
	}

	course, err := yamlSource.Course(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	s := &Site{Base: basepath.New(cfg.Site.BasePath)}

	var source registry.ModuleSource = yamlSource
	if cfg.Content.Source == config.ContentSourceMySQL {
		db, err := connectDB(ctx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		s.db = db

		if err := migrations.Run(db, logger); err != nil {
			s.Close()
			return nil, err
		}
		source = repositories.NewModuleRepository(db)
	}

	reg, err := registry.Load(ctx, source)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Registry = reg

	renderer, err := views.New(s.Base)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Renderer = renderer

	svc := services.NewModuleService(reg, s.Base, course, cfg.Site.TotalModules, logger)
	if ids := svc.Unreachable(); len(ids) > 0 {
		logger.Warn("modules outside the course length are never rendered",
			zap.Ints("modules", ids),
			zap.Int("total_modules", cfg.Site.TotalModules),
		)
	}
	s.Service = svc

	logger.Info("content loaded",
		zap.String("source", cfg.Content.Source),
		zap.Int("modules", reg.Len()),
		zap.String("base_path", s.Base.String()),
	)
	return s, nil
}

// connectDB connects to the database
func connectDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
