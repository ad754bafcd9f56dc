package models

import (
	"fmt"
	"slices"
	"strings"
)

// ColabVariant controls the visual emphasis of a notebook action
type ColabVariant string

const (
	ColabVariantPrimary   ColabVariant = "primary"
	ColabVariantSecondary ColabVariant = "secondary"
)

// colabVariantAliases maps accepted authoring spellings to variants
var colabVariantAliases = map[string]ColabVariant{
	"":          ColabVariantPrimary,
	"primary":   ColabVariantPrimary,
	"default":   ColabVariantPrimary,
	"secondary": ColabVariantSecondary,
	"outline":   ColabVariantSecondary,
}

// ParseColabVariant converts an authored variant name into a ColabVariant
func ParseColabVariant(s string) (ColabVariant, error) {
	v, ok := colabVariantAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid colab variant: %s, must be 'primary' or 'secondary'", s)
	}
	return v, nil
}

// UnmarshalText implements encoding.TextUnmarshaler for both JSON and YAML decoding
func (v *ColabVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseColabVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Metadata holds the display framing of a module page
type Metadata struct {
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	EstimatedTime string   `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	Topics        []string `json:"topics,omitempty" yaml:"topics,omitempty"`
}

// Reading represents a labeled external reference link
type Reading struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// ColabLink represents an "open notebook" action link
type ColabLink struct {
	Label   string       `json:"label" yaml:"label"`
	URL     string       `json:"url" yaml:"url"`
	Variant ColabVariant `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// Lecture represents one video/slide unit within a module
type Lecture struct {
	Title       string      `json:"title" yaml:"title"`
	VideoID     string      `json:"videoId,omitempty" yaml:"videoId,omitempty"`
	PDF         string      `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	ColabLinks  []ColabLink `json:"colabLinks,omitempty" yaml:"colabLinks,omitempty"`
	Readings    []Reading   `json:"readings,omitempty" yaml:"readings,omitempty"`
}

// PDFPreview describes a document embedded in the shared resource block
type PDFPreview struct {
	Title string `json:"title" yaml:"title"`
	Src   string `json:"src" yaml:"src"`
}

// ExtraSection is a module-scoped block that doesn't fit the lecture/resource shape
type ExtraSection struct {
	Title       string      `json:"title" yaml:"title"`
	Icon        string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Links       []ColabLink `json:"links" yaml:"links"`
}

// Module represents the content of one week/topic of the course
type Module struct {
	ModuleNumber        int            `json:"moduleNumber" yaml:"moduleNumber"`
	Metadata            Metadata       `json:"metadata" yaml:"metadata"`
	Lectures            []Lecture      `json:"lectures" yaml:"lectures"`
	ResourceTitle       string         `json:"resourceTitle,omitempty" yaml:"resourceTitle,omitempty"`
	D2LReference        string         `json:"d2lReference,omitempty" yaml:"d2lReference,omitempty"`
	ResourceDescription string         `json:"resourceDescription,omitempty" yaml:"resourceDescription,omitempty"`
	HomeworkDescription string         `json:"homeworkDescription,omitempty" yaml:"homeworkDescription,omitempty"`
	Readings            []Reading      `json:"readings,omitempty" yaml:"readings,omitempty"`
	ColabLinks          []ColabLink    `json:"colabLinks,omitempty" yaml:"colabLinks,omitempty"`
	PDFPreview          *PDFPreview    `json:"pdfPreview,omitempty" yaml:"pdfPreview,omitempty"`
	ExtraSections       []ExtraSection `json:"extraSections,omitempty" yaml:"extraSections,omitempty"`
}

// Clone returns a copy of the lecture that shares no slices with l
func (l Lecture) Clone() Lecture {
	l.ColabLinks = slices.Clone(l.ColabLinks)
	l.Readings = slices.Clone(l.Readings)
	return l
}

// Clone returns a deep copy of the module; the registry hands out clones only
func (m Module) Clone() Module {
	m.Metadata.Topics = slices.Clone(m.Metadata.Topics)
	if m.Lectures != nil {
		lectures := make([]Lecture, len(m.Lectures))
		for i := range m.Lectures {
			lectures[i] = m.Lectures[i].Clone()
		}
		m.Lectures = lectures
	}
	m.Readings = slices.Clone(m.Readings)
	m.ColabLinks = slices.Clone(m.ColabLinks)
	if m.PDFPreview != nil {
		preview := *m.PDFPreview
		m.PDFPreview = &preview
	}
	if m.ExtraSections != nil {
		extras := make([]ExtraSection, len(m.ExtraSections))
		for i, e := range m.ExtraSections {
			e.Links = slices.Clone(e.Links)
			extras[i] = e
		}
		m.ExtraSections = extras
	}
	return m
}

// HasSharedResources reports whether at least one shared-resource field is present.
// ResourceTitle alone does not count.
func (m *Module) HasSharedResources() bool {
	return m.D2LReference != "" ||
		m.ResourceDescription != "" ||
		m.HomeworkDescription != "" ||
		len(m.Readings) > 0 ||
		len(m.ColabLinks) > 0 ||
		m.PDFPreview != nil
}

// Validate checks authoring errors in a module record.
//
// Absent optional fields are never errors; only required fields that are present but empty are reported.
func (m *Module) Validate() error {
	if m.ModuleNumber <= 0 {
		return fmt.Errorf("invalid module number: %d", m.ModuleNumber)
	}
	for i := range m.Lectures {
		if err := m.Lectures[i].Validate(); err != nil {
			return fmt.Errorf("module %d lecture %d: %w", m.ModuleNumber, i+1, err)
		}
	}
	if err := validateReadings(m.Readings); err != nil {
		return fmt.Errorf("module %d: %w", m.ModuleNumber, err)
	}
	if err := validateColabLinks(m.ColabLinks); err != nil {
		return fmt.Errorf("module %d: %w", m.ModuleNumber, err)
	}
	if m.PDFPreview != nil && m.PDFPreview.Src == "" {
		return fmt.Errorf("module %d: pdf preview src is required", m.ModuleNumber)
	}
	for i, section := range m.ExtraSections {
		if section.Title == "" {
			return fmt.Errorf("module %d extra section %d: title is required", m.ModuleNumber, i+1)
		}
		if err := validateColabLinks(section.Links); err != nil {
			return fmt.Errorf("module %d extra section %q: %w", m.ModuleNumber, section.Title, err)
		}
	}
	return nil
}

// Validate checks that a lecture carries a title and well-formed links
func (l *Lecture) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("lecture title is required")
	}
	if err := validateReadings(l.Readings); err != nil {
		return err
	}
	return validateColabLinks(l.ColabLinks)
}

func validateReadings(readings []Reading) error {
	for i, r := range readings {
		if r.Label == "" || r.URL == "" {
			return fmt.Errorf("reading %d: label and url are required", i+1)
		}
	}
	return nil
}

func validateColabLinks(links []ColabLink) error {
	for i, l := range links {
		if l.Label == "" || l.URL == "" {
			return fmt.Errorf("colab link %d: label and url are required", i+1)
		}
	}
	return nil
}
