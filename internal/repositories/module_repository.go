package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dynamolab/dl-course-site/internal/models"
)

type moduleRepository struct {
	db *sql.DB
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *sql.DB) *moduleRepository {
	return &moduleRepository{
		db: db,
	}
}

// GetAll retrieves every module with its lectures, sorted by module number.
// Lectures keep their authored order (lecture_order).
func (r *moduleRepository) GetAll(ctx context.Context) ([]models.Module, error) {
	modules, err := r.getModules(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[int]int, len(modules))
	for i := range modules {
		index[modules[i].ModuleNumber] = i
	}

	lectures, err := r.getLectures(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range lectures {
		i, ok := index[l.moduleNumber]
		if !ok {
			return nil, fmt.Errorf("lecture %q references unknown module %d", l.lecture.Title, l.moduleNumber)
		}
		modules[i].Lectures = append(modules[i].Lectures, l.lecture)
	}

	return modules, nil
}

func (r *moduleRepository) getModules(ctx context.Context) ([]models.Module, error) {
	query := `
		SELECT module_number, title, description, resource_title, d2l_reference,
			resource_description, homework_description, readings, colab_links,
			pdf_preview_title, pdf_preview_src, extra_sections, estimated_time, topics
		FROM course_modules
		ORDER BY module_number
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	var modules []models.Module
	for rows.Next() {
		var m models.Module
		var description, resourceTitle, d2lReference, resourceDescription, homeworkDescription sql.NullString
		var readings, colabLinks, previewTitle, previewSrc, extraSections sql.NullString
		var estimatedTime, topics sql.NullString
		err := rows.Scan(
			&m.ModuleNumber,
			&m.Metadata.Title,
			&description,
			&resourceTitle,
			&d2lReference,
			&resourceDescription,
			&homeworkDescription,
			&readings,
			&colabLinks,
			&previewTitle,
			&previewSrc,
			&extraSections,
			&estimatedTime,
			&topics,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}

		m.Metadata.Description = description.String
		m.Metadata.EstimatedTime = estimatedTime.String
		m.ResourceTitle = resourceTitle.String
		m.D2LReference = d2lReference.String
		m.ResourceDescription = resourceDescription.String
		m.HomeworkDescription = homeworkDescription.String
		if previewSrc.Valid && previewSrc.String != "" {
			m.PDFPreview = &models.PDFPreview{Title: previewTitle.String, Src: previewSrc.String}
		}
		if err := unmarshalColumn(readings, &m.Readings); err != nil {
			return nil, fmt.Errorf("module %d readings: %w", m.ModuleNumber, err)
		}
		if err := unmarshalColumn(colabLinks, &m.ColabLinks); err != nil {
			return nil, fmt.Errorf("module %d colab links: %w", m.ModuleNumber, err)
		}
		if err := unmarshalColumn(extraSections, &m.ExtraSections); err != nil {
			return nil, fmt.Errorf("module %d extra sections: %w", m.ModuleNumber, err)
		}
		if err := unmarshalColumn(topics, &m.Metadata.Topics); err != nil {
			return nil, fmt.Errorf("module %d topics: %w", m.ModuleNumber, err)
		}
		modules = append(modules, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return modules, nil
}

type lectureRow struct {
	moduleNumber int
	lecture      models.Lecture
}

func (r *moduleRepository) getLectures(ctx context.Context) ([]lectureRow, error) {
	query := `
		SELECT module_number, title, video_id, pdf, description, colab_links, readings
		FROM module_lectures
		ORDER BY module_number, lecture_order
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lectures: %w", err)
	}
	defer rows.Close()

	var lectures []lectureRow
	for rows.Next() {
		var row lectureRow
		var videoID, pdf, description, colabLinks, readings sql.NullString
		err := rows.Scan(
			&row.moduleNumber,
			&row.lecture.Title,
			&videoID,
			&pdf,
			&description,
			&colabLinks,
			&readings,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lecture: %w", err)
		}

		row.lecture.VideoID = videoID.String
		row.lecture.PDF = pdf.String
		row.lecture.Description = description.String
		if err := unmarshalColumn(colabLinks, &row.lecture.ColabLinks); err != nil {
			return nil, fmt.Errorf("lecture %q colab links: %w", row.lecture.Title, err)
		}
		if err := unmarshalColumn(readings, &row.lecture.Readings); err != nil {
			return nil, fmt.Errorf("lecture %q readings: %w", row.lecture.Title, err)
		}
		lectures = append(lectures, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lectures, nil
}

// unmarshalColumn decodes a nullable JSON column; NULL and empty leave dst untouched
func unmarshalColumn(column sql.NullString, dst any) error {
	if !column.Valid || column.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(column.String), dst); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return nil
}
