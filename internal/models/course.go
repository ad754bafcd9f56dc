package models

// Course holds the course-level framing shown on the module index
type Course struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// CourseIndexItem represents a module entry in the course index.
// Topics holds at most the first three authored topics.
type CourseIndexItem struct {
	ModuleNumber  int      `json:"moduleNumber"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Href          string   `json:"href"`
	Available     bool     `json:"available"`
	LectureCount  int      `json:"lectureCount"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Topics        []string `json:"topics,omitempty"`
}

// CourseIndex represents the module list view, sorted by module number
type CourseIndex struct {
	Course  Course            `json:"course"`
	Modules []CourseIndexItem `json:"modules"`
}
