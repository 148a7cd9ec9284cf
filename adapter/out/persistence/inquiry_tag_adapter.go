package persistence

import (
	"context"
	"fmt"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/out"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// =============================================================================
// Tag Adapter (classification results)
// =============================================================================

// TagAdapter implements out.TagRepository. Tags are association rows keyed
// (inquiry_id, value); the composite primary key plus ON CONFLICT DO NOTHING
// makes every upsert idempotent.
type TagAdapter struct {
	db *sqlx.DB
}

// NewTagAdapter creates a new TagAdapter.
func NewTagAdapter(db *sqlx.DB) *TagAdapter {
	return &TagAdapter{db: db}
}

// UpsertCategories inserts category tags, skipping rows that already exist.
func (a *TagAdapter) UpsertCategories(ctx context.Context, inquiryID uuid.UUID, categories []string) error {
	if len(categories) == 0 {
		return nil
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO inquiry_categories (inquiry_id, category)
		VALUES ($1, $2)
		ON CONFLICT (inquiry_id, category) DO NOTHING`

	for _, category := range categories {
		if _, err := tx.ExecContext(ctx, query, inquiryID, category); err != nil {
			return fmt.Errorf("failed to upsert category tag: %w", err)
		}
	}
	return tx.Commit()
}

// UpsertCountries inserts country tags, skipping rows that already exist.
func (a *TagAdapter) UpsertCountries(ctx context.Context, inquiryID uuid.UUID, countries []string) error {
	if len(countries) == 0 {
		return nil
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO inquiry_countries (inquiry_id, country)
		VALUES ($1, $2)
		ON CONFLICT (inquiry_id, country) DO NOTHING`

	for _, country := range countries {
		if _, err := tx.ExecContext(ctx, query, inquiryID, country); err != nil {
			return fmt.Errorf("failed to upsert country tag: %w", err)
		}
	}
	return tx.Commit()
}

// GetByInquiry loads all tags for one inquiry. Both slices are non-nil.
func (a *TagAdapter) GetByInquiry(ctx context.Context, inquiryID uuid.UUID) (*domain.ClassificationResult, error) {
	categories := make([]string, 0)
	query := `SELECT category FROM inquiry_categories WHERE inquiry_id = $1 ORDER BY category`
	if err := a.db.SelectContext(ctx, &categories, query, inquiryID); err != nil {
		return nil, fmt.Errorf("failed to load category tags: %w", err)
	}

	countries := make([]string, 0)
	query = `SELECT country FROM inquiry_countries WHERE inquiry_id = $1 ORDER BY country`
	if err := a.db.SelectContext(ctx, &countries, query, inquiryID); err != nil {
		return nil, fmt.Errorf("failed to load country tags: %w", err)
	}

	return &domain.ClassificationResult{
		Categories: categories,
		Countries:  countries,
	}, nil
}

// DeleteByInquiry removes all tags for one inquiry.
func (a *TagAdapter) DeleteByInquiry(ctx context.Context, inquiryID uuid.UUID) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM inquiry_categories WHERE inquiry_id = $1`, inquiryID); err != nil {
		return fmt.Errorf("failed to delete category tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM inquiry_countries WHERE inquiry_id = $1`, inquiryID); err != nil {
		return fmt.Errorf("failed to delete country tags: %w", err)
	}
	return tx.Commit()
}

// CountByCategory returns the most frequent category tags.
func (a *TagAdapter) CountByCategory(ctx context.Context, limit int) ([]out.LabelCount, error) {
	query := `
		SELECT category AS label, COUNT(*) AS count
		FROM inquiry_categories
		GROUP BY category
		ORDER BY count DESC, category
		LIMIT $1`

	var buckets []out.LabelCount
	if err := a.db.SelectContext(ctx, &buckets, query, limit); err != nil {
		return nil, fmt.Errorf("failed to count by category: %w", err)
	}
	return buckets, nil
}

// CountByCountry returns the most frequent country tags.
func (a *TagAdapter) CountByCountry(ctx context.Context, limit int) ([]out.LabelCount, error) {
	query := `
		SELECT country AS label, COUNT(*) AS count
		FROM inquiry_countries
		GROUP BY country
		ORDER BY count DESC, country
		LIMIT $1`

	var buckets []out.LabelCount
	if err := a.db.SelectContext(ctx, &buckets, query, limit); err != nil {
		return nil, fmt.Errorf("failed to count by country: %w", err)
	}
	return buckets, nil
}
