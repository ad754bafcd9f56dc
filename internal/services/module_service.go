package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dynamolab/dl-course-site/internal/basepath"
	"github.com/dynamolab/dl-course-site/internal/models"
	"github.com/dynamolab/dl-course-site/internal/registry"
	"go.uber.org/zap"
)

// ModuleRegistry is the interface that wraps methods for module content lookup
type ModuleRegistry interface {
	// Get retrieves a module by its number.
	//
	// If no module is registered under "id", registry.ErrModuleNotFound is returned together with "nil" value.
	Get(id int) (*models.Module, error)
	// List retrieves all registered modules sorted by module number ascending.
	List() []models.Module
}

const (
	defaultResourceTitle = "📚 Resources & Lecture Code"
	youtubeEmbedBaseURL  = "https://www.youtube.com/embed/"
	d2lSourceLabel       = "Dive into Deep Learning"
	d2lSourceURL         = "https://d2l.ai/index.html"
	viewSlidesLabel      = "View Slides"
	startOfCourseLabel   = "Start of course"
	endOfCourseLabel     = "End of course"
	comingSoonNotice     = "Content for this module is coming soon."
	backToModulesLabel   = "Back to modules"
	indexTopicLimit      = 3
)

type moduleService struct {
	registry     ModuleRegistry
	base         basepath.BasePath
	course       models.Course
	totalModules int
	logger       *zap.Logger
}

// NewModuleService creates a new module service.
//
// "totalModules" bounds pagination and the valid id range; it is independent of how many modules are authored.
func NewModuleService(registry ModuleRegistry, base basepath.BasePath, course models.Course, totalModules int, logger *zap.Logger) *moduleService {
	return &moduleService{
		registry:     registry,
		base:         base,
		course:       course,
		totalModules: totalModules,
		logger:       logger,
	}
}

// TotalModules returns the configured number of modules in the course
func (s *moduleService) TotalModules() int {
	return s.totalModules
}

// InRange reports whether id lies within [1, totalModules]
func (s *moduleService) InRange(id int) bool {
	return id >= 1 && id <= s.totalModules
}

// GetModule retrieves the authored record of a module.
//
// Ids outside [1, totalModules] are reported as registry.ErrModuleNotFound, same as absent keys.
func (s *moduleService) GetModule(id int) (*models.Module, error) {
	if !s.InRange(id) {
		return nil, registry.ErrModuleNotFound
	}
	m, err := s.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get module %d: %w", id, err)
	}
	return m, nil
}

// RenderModulePage composes the page for a module id.
//
// This never fails: an absent or out-of-range module yields the placeholder page.
func (s *moduleService) RenderModulePage(id int) *models.Page {
	m, err := s.GetModule(id)
	if err != nil {
		if !errors.Is(err, registry.ErrModuleNotFound) {
			s.logger.Warn("unexpected module lookup error", zap.Int("module", id), zap.Error(err))
		}
		s.logger.Debug("rendering placeholder page", zap.Int("module", id))
		return s.placeholderPage(id)
	}

	page := &models.Page{
		Kind:         models.PageKindModule,
		ModuleNumber: id,
		Metadata:     m.Metadata,
		Lectures:     make([]models.LectureBlock, 0, len(m.Lectures)),
		Resources:    s.resourceBlock(m),
		Pagination:   s.pagination(id),
	}
	page.Metadata.Topics = slices.Clone(m.Metadata.Topics)
	for i := range m.Lectures {
		page.Lectures = append(page.Lectures, s.lectureBlock(&m.Lectures[i]))
	}
	for _, section := range m.ExtraSections {
		page.Extras = append(page.Extras, models.ExtraBlock{
			Title:       section.Title,
			Icon:        section.Icon,
			Description: section.Description,
			Actions:     actions(section.Links),
		})
	}
	return page
}

// GetCourseIndex builds the module list view: one entry per number in [1, totalModules], authored or not
func (s *moduleService) GetCourseIndex() *models.CourseIndex {
	index := &models.CourseIndex{
		Course:  s.course,
		Modules: make([]models.CourseIndexItem, 0, s.totalModules),
	}

	for n := 1; n <= s.totalModules; n++ {
		m, err := s.registry.Get(n)
		if err != nil {
			index.Modules = append(index.Modules, models.CourseIndexItem{
				ModuleNumber: n,
				Title:        fmt.Sprintf("Module %d", n),
				Description:  "Coming soon",
				Href:         s.moduleHref(n),
			})
			continue
		}
		index.Modules = append(index.Modules, s.indexItem(m))
	}
	return index
}

// Unreachable returns authored module numbers outside [1, totalModules]; they are never rendered
func (s *moduleService) Unreachable() []int {
	var ids []int
	for _, m := range s.registry.List() {
		if !s.InRange(m.ModuleNumber) {
			ids = append(ids, m.ModuleNumber)
		}
	}
	return ids
}

func (s *moduleService) indexItem(m *models.Module) models.CourseIndexItem {
	topics := m.Metadata.Topics
	if len(topics) > indexTopicLimit {
		topics = topics[:indexTopicLimit]
	}
	return models.CourseIndexItem{
		ModuleNumber:  m.ModuleNumber,
		Title:         m.Metadata.Title,
		Description:   m.Metadata.Description,
		Href:          s.moduleHref(m.ModuleNumber),
		Available:     true,
		LectureCount:  len(m.Lectures),
		EstimatedTime: m.Metadata.EstimatedTime,
		Topics:        slices.Clone(topics),
	}
}

func (s *moduleService) placeholderPage(id int) *models.Page {
	page := &models.Page{
		Kind:         models.PageKindPlaceholder,
		ModuleNumber: id,
		Metadata: models.Metadata{
			Title:       fmt.Sprintf("Module %d – Coming Soon", id),
			Description: comingSoonNotice,
		},
		Placeholder: &models.PlaceholderBlock{
			Notice:    comingSoonNotice,
			BackLabel: backToModulesLabel,
			BackHref:  s.base.With("/"),
		},
	}
	if s.InRange(id) {
		page.Pagination = s.pagination(id)
	}
	return page
}

func (s *moduleService) lectureBlock(l *models.Lecture) models.LectureBlock {
	block := models.LectureBlock{
		Title:       l.Title,
		Description: l.Description,
		Readings:    slices.Clone(l.Readings),
		Actions:     actions(l.ColabLinks),
	}
	if l.VideoID != "" {
		block.Video = &models.VideoEmbed{
			VideoID:  l.VideoID,
			EmbedURL: youtubeEmbedBaseURL + l.VideoID,
			Title:    l.Title,
		}
	}
	if l.PDF != "" {
		block.Document = &models.DocumentPreview{
			Title:     l.Title + " slides",
			Src:       s.base.Asset(l.PDF),
			ViewLabel: viewSlidesLabel,
		}
	}
	return block
}

// resourceBlock returns nil when the module has no shared resources, so no empty card is rendered
func (s *moduleService) resourceBlock(m *models.Module) *models.ResourceBlock {
	if !m.HasSharedResources() {
		return nil
	}

	block := &models.ResourceBlock{
		Title:       m.ResourceTitle,
		Description: m.ResourceDescription,
		Homework:    m.HomeworkDescription,
		Readings:    slices.Clone(m.Readings),
		Actions:     actions(m.ColabLinks),
	}
	if block.Title == "" {
		block.Title = defaultResourceTitle
	}
	if m.D2LReference != "" {
		block.Citation = &models.Citation{
			Reference:   m.D2LReference,
			SourceLabel: d2lSourceLabel,
			SourceURL:   d2lSourceURL,
		}
	}
	if m.PDFPreview != nil {
		block.Preview = &models.DocumentPreview{
			Title: m.PDFPreview.Title,
			Src:   s.base.Asset(m.PDFPreview.Src),
		}
	}
	return block
}

func (s *moduleService) pagination(id int) *models.Pagination {
	p := &models.Pagination{}
	if id > 1 {
		p.Previous = s.pageLink(id - 1)
	} else {
		p.StartLabel = startOfCourseLabel
	}
	if id < s.totalModules {
		p.Next = s.pageLink(id + 1)
	} else {
		p.EndLabel = endOfCourseLabel
	}
	return p
}

func (s *moduleService) pageLink(id int) *models.PageLink {
	return &models.PageLink{
		ModuleNumber: id,
		Label:        fmt.Sprintf("Module %d", id),
		Href:         s.moduleHref(id),
	}
}

func (s *moduleService) moduleHref(id int) string {
	return s.base.With(fmt.Sprintf("/module/%d/", id))
}

// actions converts authored links into buttons, defaulting the variant to primary
func actions(links []models.ColabLink) []models.ActionLink {
	if len(links) == 0 {
		return nil
	}
	result := make([]models.ActionLink, 0, len(links))
	for _, l := range links {
		variant := l.Variant
		if variant == "" {
			variant = models.ColabVariantPrimary
		}
		result = append(result, models.ActionLink{
			Label:   l.Label,
			URL:     l.URL,
			Variant: variant,
		})
	}
	return result
}
