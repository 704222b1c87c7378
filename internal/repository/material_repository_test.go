package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"studybyte/internal/domain"
	"studybyte/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMaterialTestDB creates a new sqlx.DB instance and sqlmock for material repository testing.
func setupMaterialTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.MonitorPingsOption(true),
	)
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var mockMaterialColumns = []string{
	"ID", "USER_ID", "FILENAME", "FILE_TYPE", "CONTENT", "ANALYSIS_JSON",
	"GENERATED_BY", "WORD_COUNT", "CHAR_COUNT", "CREATED_AT",
}

func sampleMaterial(now time.Time) *domain.Material {
	return &domain.Material{
		ID:       "01HZX3JQ9V2Y8K7M6N5P4R3S2T",
		UserID:   "user-1",
		Filename: "Smart City Design.pdf",
		FileType: "pdf",
		Content:  "Smart grids balance load",
		Analysis: domain.ContentAnalysis{
			Summary:         "summary",
			KeyTopics:       []string{"Smart Grids"},
			DifficultyLevel: domain.LevelIntermediate,
		},
		GeneratedBy: domain.GeneratedByFallback,
		WordCount:   4,
		CharCount:   24,
		CreatedAt:   now,
	}
}

func TestSQLXMaterialRepository_SaveMaterial(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	t.Run("success", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)
		m := sampleMaterial(now)

		mock.ExpectExec(`INSERT INTO materials`).
			WithArgs(m.ID, "user-1", m.Filename, "pdf", m.Content,
				sqlmock.AnyArg(), domain.GeneratedByFallback, 4, 24, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveMaterial(ctx, m))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("anonymous upload stores NULL user", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)
		m := sampleMaterial(now)
		m.UserID = ""

		mock.ExpectExec(`INSERT INTO materials`).
			WithArgs(m.ID, nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveMaterial(ctx, m))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		dbErr := errors.New("ORA-00001: unique constraint violated")
		mock.ExpectExec(`INSERT INTO materials`).WillReturnError(dbErr)

		err := repo.SaveMaterial(ctx, sampleMaterial(now))
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil material", func(t *testing.T) {
		db, _ := setupMaterialTestDB(t)
		assert.Error(t, NewSQLXMaterialRepository(db).SaveMaterial(ctx, nil))
	})
}

func TestSQLXMaterialRepository_GetMaterialByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	id := "01HZX3JQ9V2Y8K7M6N5P4R3S2T"

	t.Run("found", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		rows := sqlmock.NewRows(mockMaterialColumns).AddRow(
			id, "user-1", "notes.txt", "txt", "body",
			`{"summary":"s","key_topics":["A"],"difficulty_level":"beginner"}`,
			domain.GeneratedByAI, 1, 4, now,
		)
		mock.ExpectQuery(`SELECT .* FROM materials\s+WHERE id = :1`).WithArgs(id).WillReturnRows(rows)

		m, err := repo.GetMaterialByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "user-1", m.UserID)
		assert.Equal(t, "notes.txt", m.Filename)
		assert.Equal(t, "s", m.Analysis.Summary)
		assert.Equal(t, []string{"A"}, m.Analysis.KeyTopics)
		assert.Equal(t, domain.GeneratedByAI, m.GeneratedBy)
		assert.True(t, now.Equal(m.CreatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		mock.ExpectQuery(`SELECT .* FROM materials`).WithArgs(id).WillReturnError(sql.ErrNoRows)

		m, err := repo.GetMaterialByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, m)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		mock.ExpectQuery(`SELECT .* FROM materials`).WithArgs(id).WillReturnError(errors.New("ORA-03113"))

		m, err := repo.GetMaterialByID(ctx, id)
		assert.Error(t, err)
		assert.Nil(t, m)
	})
}

func TestBuildListQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		results, count, args := buildListQuery(domain.MaterialFilter{})
		assert.NotContains(t, results, "WHERE")
		assert.Contains(t, results, "ORDER BY created_at DESC, id DESC OFFSET 0 ROWS FETCH NEXT 20 ROWS ONLY")
		assert.Equal(t, "SELECT COUNT(*) FROM materials", count)
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		results, count, args := buildListQuery(domain.MaterialFilter{
			UserID:     "user-1",
			Search:     "50%_Off",
			Subject:    "Mathematics",
			Difficulty: "Intermediate",
			Limit:      5,
			Offset:     10,
		})
		assert.Contains(t, results, "user_id = :1")
		assert.Contains(t, results, "LOWER(filename) LIKE :2")
		assert.Contains(t, results, "LOWER(content) LIKE :3")
		assert.Contains(t, results, "JSON_VALUE(analysis_json, '$.subject_category')) = :4")
		assert.Contains(t, results, "JSON_VALUE(analysis_json, '$.difficulty_level')) = :5")
		assert.Contains(t, results, "OFFSET 10 ROWS FETCH NEXT 5 ROWS ONLY")
		assert.Contains(t, count, "WHERE user_id = :1 AND")
		assert.Equal(t, []interface{}{"user-1", `%50\%\_off%`, `%50\%\_off%`, "mathematics", "intermediate"}, args)
	})

	t.Run("negative offset", func(t *testing.T) {
		results, _, _ := buildListQuery(domain.MaterialFilter{Offset: -3, Limit: 2})
		assert.Contains(t, results, "OFFSET 0 ROWS FETCH NEXT 2 ROWS ONLY")
	})
}

func TestSQLXMaterialRepository_ListMaterials(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	t.Run("matches", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)
		filter := domain.MaterialFilter{UserID: "user-1", Subject: "engineering"}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM materials WHERE user_id = :1 AND`).
			WithArgs("user-1", "engineering").
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(2))
		rows := sqlmock.NewRows(mockMaterialColumns).
			AddRow("01HZX3JQ9V2Y8K7M6N5P4R3S2T", "user-1", "Smart City Design.pdf", "pdf", "grids",
				`{"summary":"a","subject_category":"engineering","difficulty_level":"intermediate"}`,
				domain.GeneratedByFallback, 1, 5, now).
			AddRow("01HZX3JQ9V2Y8K7M6N5P4R3S2V", "user-1", "Urban_Development_Trends.pdf", "pdf", "zoning",
				`{"summary":"b","subject_category":"engineering","difficulty_level":"intermediate"}`,
				domain.GeneratedByAI, 1, 6, now)
		mock.ExpectQuery(`SELECT .* FROM materials WHERE user_id = :1 .* ORDER BY created_at DESC`).
			WithArgs("user-1", "engineering").
			WillReturnRows(rows)

		materials, total, err := repo.ListMaterials(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, materials, 2)
		assert.Equal(t, "Smart City Design.pdf", materials[0].Filename)
		assert.Equal(t, "b", materials[1].Analysis.Summary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches skips the page query", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM materials`).
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))

		materials, total, err := repo.ListMaterials(ctx, domain.MaterialFilter{})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, materials)
		assert.Empty(t, materials)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		dbErr := errors.New("ORA-40441: JSON syntax error")
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM materials`).WillReturnError(dbErr)

		_, _, err := repo.ListMaterials(ctx, domain.MaterialFilter{Difficulty: "advanced"})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("page error", func(t *testing.T) {
		db, mock := setupMaterialTestDB(t)
		repo := NewSQLXMaterialRepository(db)

		dbErr := errors.New("ORA-03113")
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM materials`).
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
		mock.ExpectQuery(`ORDER BY created_at DESC`).WillReturnError(dbErr)

		_, _, err := repo.ListMaterials(ctx, domain.MaterialFilter{})
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXMaterialRepository_Ping(t *testing.T) {
	db, mock := setupMaterialTestDB(t)
	repo := NewSQLXMaterialRepository(db)

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToDomainMaterial_BadJSON(t *testing.T) {
	_, err := toDomainMaterial(&models.Material{ID: "x", AnalysisJSON: "{not json"})
	assert.Error(t, err)

	m, err := toDomainMaterial(nil)
	assert.NoError(t, err)
	assert.Nil(t, m)
}
