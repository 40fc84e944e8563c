package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-portfolio/internal/types"
)

const portfolioColumns = `id, user_id, title, COALESCE(profile_photo, ''), hero, about, experience, projects, contact, is_published, COALESCE(slug, ''), created_at, updated_at`

func scanPortfolio(row pgx.Row) (*Portfolio, error) {
	var p Portfolio
	var hero, about, experience, projects, contact []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.ProfilePhoto,
		&hero, &about, &experience, &projects, &contact,
		&p.IsPublished, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sections := []struct {
		name string
		raw  []byte
		dest interface{}
	}{
		{"hero", hero, &p.Hero},
		{"about", about, &p.About},
		{"experience", experience, &p.Experience},
		{"projects", projects, &p.Projects},
		{"contact", contact, &p.Contact},
	}
	for _, s := range sections {
		if len(s.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dest); err != nil {
			return nil, fmt.Errorf("decode %s column: %w", s.name, err)
		}
	}
	return &p, nil
}

func marshalSections(content *types.PortfolioContent) (hero, about, experience, projects, contact []byte, err error) {
	if hero, err = json.Marshal(content.Hero); err != nil {
		return
	}
	if about, err = json.Marshal(content.About); err != nil {
		return
	}
	if experience, err = json.Marshal(content.Experience); err != nil {
		return
	}
	if projects, err = json.Marshal(content.Projects); err != nil {
		return
	}
	contact, err = json.Marshal(content.Contact)
	return
}

// CreatePortfolio inserts a new unpublished portfolio for userID and
// returns the stored row.
func (c *Client) CreatePortfolio(ctx context.Context, userID, title string, content *types.PortfolioContent) (*Portfolio, error) {
	content.Normalize()
	hero, about, experience, projects, contact, err := marshalSections(content)
	if err != nil {
		return nil, fmt.Errorf("encode portfolio content: %w", err)
	}

	id := uuid.New().String()
	query := fmt.Sprintf(`
		INSERT INTO portfolios (id, user_id, title, profile_photo, hero, about, experience, projects, contact, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, NOW(), NOW())
		RETURNING %s`, portfolioColumns)

	row := c.pool.QueryRow(ctx, query, id, userID, title, content.ProfilePhoto, hero, about, experience, projects, contact)
	p, err := scanPortfolio(row)
	if err != nil {
		return nil, fmt.Errorf("insert portfolio: %w", err)
	}
	return p, nil
}

// GetPortfolio fetches a portfolio by id. Returns (nil, nil) when no such
// row exists.
func (c *Client) GetPortfolio(ctx context.Context, id string) (*Portfolio, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolios WHERE id = $1`, portfolioColumns)
	p, err := scanPortfolio(c.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	return p, nil
}

// GetPortfolioBySlug fetches a published portfolio by slug. Unpublished
// rows are invisible here regardless of slug. Returns (nil, nil) when no
// published row matches.
func (c *Client) GetPortfolioBySlug(ctx context.Context, slug string) (*Portfolio, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolios WHERE slug = $1 AND is_published = TRUE`, portfolioColumns)
	p, err := scanPortfolio(c.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio by slug: %w", err)
	}
	return p, nil
}

// ListPortfolios returns all of userID's portfolios, most recently
// updated first.
func (c *Client) ListPortfolios(ctx context.Context, userID string) ([]*Portfolio, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolios WHERE user_id = $1 ORDER BY updated_at DESC`, portfolioColumns)
	rows, err := c.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	defer rows.Close()

	portfolios := []*Portfolio{}
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return portfolios, nil
}

// UpdatePortfolio applies a partial update and returns the fresh row.
// Only non-nil fields of update change; updated_at always advances.
func (c *Client) UpdatePortfolio(ctx context.Context, id string, update PortfolioUpdate) (*Portfolio, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addJSON := func(column string, value interface{}) error {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s column: %w", column, err)
		}
		add(column, raw)
		return nil
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.ProfilePhoto != nil {
		add("profile_photo", *update.ProfilePhoto)
	}
	if update.Hero != nil {
		if err := addJSON("hero", update.Hero); err != nil {
			return nil, err
		}
	}
	if update.About != nil {
		if err := addJSON("about", update.About); err != nil {
			return nil, err
		}
	}
	if update.Experience != nil {
		if err := addJSON("experience", *update.Experience); err != nil {
			return nil, err
		}
	}
	if update.Projects != nil {
		if err := addJSON("projects", *update.Projects); err != nil {
			return nil, err
		}
	}
	if update.Contact != nil {
		if err := addJSON("contact", update.Contact); err != nil {
			return nil, err
		}
	}

	query := fmt.Sprintf(`UPDATE portfolios SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), portfolioColumns)
	p, err := scanPortfolio(c.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update portfolio: %w", err)
	}
	return p, nil
}

// DeletePortfolio removes a portfolio by id.
func (c *Client) DeletePortfolio(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{ID: id}
	}
	return nil
}

// PublishPortfolio marks the portfolio published under slug. The slug is
// normalized first; a different portfolio already holding it fails with
// *ErrSlugTaken.
func (c *Client) PublishPortfolio(ctx context.Context, id, slug string) (*Portfolio, error) {
	slug = NormalizeSlug(slug)
	if slug == "" {
		return nil, fmt.Errorf("slug is empty after normalization")
	}

	var holder string
	err := c.pool.QueryRow(ctx,
		`SELECT id FROM portfolios WHERE slug = $1 AND id <> $2`, slug, id).Scan(&holder)
	if err == nil {
		return nil, &ErrSlugTaken{Slug: slug}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check slug availability: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE portfolios SET is_published = TRUE, slug = $2, updated_at = NOW()
		WHERE id = $1 RETURNING %s`, portfolioColumns)
	p, err := scanPortfolio(c.pool.QueryRow(ctx, query, id, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("publish portfolio: %w", err)
	}
	return p, nil
}

// UnpublishPortfolio takes the portfolio offline. The slug is retained so
// republishing restores the same URL.
func (c *Client) UnpublishPortfolio(ctx context.Context, id string) (*Portfolio, error) {
	query := fmt.Sprintf(`
		UPDATE portfolios SET is_published = FALSE, updated_at = NOW()
		WHERE id = $1 RETURNING %s`, portfolioColumns)
	p, err := scanPortfolio(c.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("unpublish portfolio: %w", err)
	}
	return p, nil
}
