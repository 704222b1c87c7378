package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"studybyte/internal/domain"
	"studybyte/internal/repository/models"
	"studybyte/internal/util"
)

// SQLXMaterialRepository implements domain.MaterialRepository on Oracle via sqlx
type SQLXMaterialRepository struct {
	db DBTX
}

var _ domain.MaterialRepository = (*SQLXMaterialRepository)(nil)

func NewSQLXMaterialRepository(db DBTX) *SQLXMaterialRepository {
	return &SQLXMaterialRepository{db: db}
}

func (r *SQLXMaterialRepository) SaveMaterial(ctx context.Context, material *domain.Material) error {
	if material == nil {
		return fmt.Errorf("cannot save nil material")
	}
	model, err := fromDomainMaterial(material)
	if err != nil {
		return err
	}

	query := `INSERT INTO materials (
		id, user_id, filename, file_type, content, analysis_json,
		generated_by, word_count, char_count, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10
	)`

	_, err = r.db.ExecContext(ctx, query,
		model.ID,
		model.UserID,
		model.Filename,
		model.FileType,
		model.Content,
		model.AnalysisJSON,
		model.GeneratedBy,
		model.WordCount,
		model.CharCount,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save material %s: %w", model.ID, err)
	}
	return nil
}

func (r *SQLXMaterialRepository) GetMaterialByID(ctx context.Context, id string) (*domain.Material, error) {
	var model models.Material
	query := `SELECT ` + materialColumns + `
	FROM materials
	WHERE id = :1`

	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material by ID %s: %w", id, err)
	}
	return toDomainMaterial(&model)
}

const (
	defaultListLimit = 20

	materialColumns = `id, user_id, filename, file_type, content, analysis_json,
		generated_by, word_count, char_count, created_at`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery constructs the page query and the count query for filter,
// together with their shared positional arguments.
func buildListQuery(filter domain.MaterialFilter) (string, string, []interface{}) {
	var args []interface{}
	var whereClauses []string
	argIndex := 1

	if filter.UserID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("user_id = :%d", argIndex))
		args = append(args, filter.UserID)
		argIndex++
	}

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		whereClauses = append(whereClauses, fmt.Sprintf(
			`(LOWER(filename) LIKE :%d ESCAPE '\' OR LOWER(content) LIKE :%d ESCAPE '\')`, argIndex, argIndex+1))
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	if filter.Subject != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"LOWER(JSON_VALUE(analysis_json, '$.subject_category')) = :%d", argIndex))
		args = append(args, strings.ToLower(filter.Subject))
		argIndex++
	}

	if filter.Difficulty != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"LOWER(JSON_VALUE(analysis_json, '$.difficulty_level')) = :%d", argIndex))
		args = append(args, strings.ToLower(filter.Difficulty))
		argIndex++
	}

	queryWhere := ""
	if len(whereClauses) > 0 {
		queryWhere = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	resultsQuery := fmt.Sprintf("SELECT %s FROM materials%s ORDER BY created_at DESC, id DESC OFFSET %d ROWS FETCH NEXT %d ROWS ONLY",
		materialColumns, queryWhere, offset, limit)
	countQuery := "SELECT COUNT(*) FROM materials" + queryWhere

	return resultsQuery, countQuery, args
}

func (r *SQLXMaterialRepository) ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]*domain.Material, int, error) {
	resultsQuery, countQuery, args := buildListQuery(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count materials: %w", err)
	}
	if total == 0 {
		return []*domain.Material{}, 0, nil
	}

	var rows []models.Material
	if err := r.db.SelectContext(ctx, &rows, resultsQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*domain.Material, 0, len(rows))
	for i := range rows {
		material, err := toDomainMaterial(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		materials = append(materials, material)
	}
	return materials, total, nil
}

func (r *SQLXMaterialRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func fromDomainMaterial(m *domain.Material) (*models.Material, error) {
	analysisJSON, err := json.Marshal(m.Analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis for material %s: %w", m.ID, err)
	}
	return &models.Material{
		ID:           m.ID,
		UserID:       util.StringToNullString(m.UserID),
		Filename:     m.Filename,
		FileType:     m.FileType,
		Content:      m.Content,
		AnalysisJSON: string(analysisJSON),
		GeneratedBy:  m.GeneratedBy,
		WordCount:    m.WordCount,
		CharCount:    m.CharCount,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func toDomainMaterial(m *models.Material) (*domain.Material, error) {
	if m == nil {
		return nil, nil
	}
	material := &domain.Material{
		ID:          m.ID,
		UserID:      m.UserID.String,
		Filename:    m.Filename,
		FileType:    m.FileType,
		Content:     m.Content,
		GeneratedBy: m.GeneratedBy,
		WordCount:   m.WordCount,
		CharCount:   m.CharCount,
		CreatedAt:   m.CreatedAt,
	}
	if m.AnalysisJSON != "" {
		if err := json.Unmarshal([]byte(m.AnalysisJSON), &material.Analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis of material %s: %w", m.ID, err)
		}
	}
	return material, nil
}
