package models

// PageKind distinguishes a rendered module from the placeholder fallback
type PageKind string

const (
	PageKindModule      PageKind = "module"
	PageKindPlaceholder PageKind = "placeholder"
)

// Page is the fully composed view of one module id.
//
// Every section is optional: a nil pointer or an empty slice means the section is not rendered at all.
type Page struct {
	Kind         PageKind          `json:"kind"`
	ModuleNumber int               `json:"moduleNumber"`
	Metadata     Metadata          `json:"metadata"`
	Lectures     []LectureBlock    `json:"lectures,omitempty"`
	Resources    *ResourceBlock    `json:"resources,omitempty"`
	Extras       []ExtraBlock      `json:"extras,omitempty"`
	Pagination   *Pagination       `json:"pagination,omitempty"`
	Placeholder  *PlaceholderBlock `json:"placeholder,omitempty"`
}

// IsPlaceholder reports whether the page is the "coming soon" fallback
func (p *Page) IsPlaceholder() bool {
	return p.Kind == PageKindPlaceholder
}

// ActionLink is a rendered button pointing to an external target
type ActionLink struct {
	Label   string       `json:"label"`
	URL     string       `json:"url"`
	Variant ColabVariant `json:"variant"`
}

// VideoEmbed is an embedded lecture video
type VideoEmbed struct {
	VideoID  string `json:"videoId"`
	EmbedURL string `json:"embedUrl"`
	Title    string `json:"title"`
}

// DocumentPreview is an embedded document with a "view" action
type DocumentPreview struct {
	Title     string `json:"title"`
	Src       string `json:"src"`
	ViewLabel string `json:"viewLabel,omitempty"`
}

// LectureBlock is the rendered form of one lecture
type LectureBlock struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Video       *VideoEmbed      `json:"video,omitempty"`
	Document    *DocumentPreview `json:"document,omitempty"`
	Readings    []Reading        `json:"readings,omitempty"`
	Actions     []ActionLink     `json:"actions,omitempty"`
}

// Citation is the recommended textbook reference line
type Citation struct {
	Reference   string `json:"reference"`
	SourceLabel string `json:"sourceLabel"`
	SourceURL   string `json:"sourceUrl"`
}

// ResourceBlock is the shared resource card of a module
type ResourceBlock struct {
	Title       string           `json:"title"`
	Citation    *Citation        `json:"citation,omitempty"`
	Description string           `json:"description,omitempty"`
	Homework    string           `json:"homework,omitempty"`
	Preview     *DocumentPreview `json:"preview,omitempty"`
	Readings    []Reading        `json:"readings,omitempty"`
	Actions     []ActionLink     `json:"actions,omitempty"`
}

// ExtraBlock is the rendered form of an ExtraSection
type ExtraBlock struct {
	Title       string       `json:"title"`
	Icon        string       `json:"icon,omitempty"`
	Description string       `json:"description,omitempty"`
	Actions     []ActionLink `json:"actions,omitempty"`
}

// PageLink points to another module page
type PageLink struct {
	ModuleNumber int    `json:"moduleNumber"`
	Label        string `json:"label"`
	Href         string `json:"href"`
}

// Pagination holds previous/next navigation.
// When a link is nil the corresponding static label is shown instead.
type Pagination struct {
	Previous   *PageLink `json:"previous,omitempty"`
	Next       *PageLink `json:"next,omitempty"`
	StartLabel string    `json:"startLabel,omitempty"`
	EndLabel   string    `json:"endLabel,omitempty"`
}

// PlaceholderBlock is the "coming soon" notice with a way back to the index
type PlaceholderBlock struct {
	Notice    string `json:"notice"`
	BackLabel string `json:"backLabel"`
	BackHref  string `json:"backHref"`
}
