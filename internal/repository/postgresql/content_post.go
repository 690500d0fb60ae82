package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/calendar"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
)

type contentPostRepository struct {
	db *database.DB
}

func NewContentPostRepository(db *database.DB) calendar.ContentPostRepository {
	return &contentPostRepository{db: db}
}

const contentPostColumns = `
	cp.id, cp.title, cp.body, cp.channel, cp.publish_date,
	cp.status, cp.author_id, cp.created_at, cp.updated_at`

func scanContentPost(row pgx.Row, withAuthorName bool) (calendar.ContentPost, error) {
	var post calendar.ContentPost
	dest := []interface{}{
		&post.ID, &post.Title, &post.Body, &post.Channel, &post.PublishDate,
		&post.Status, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	}
	if withAuthorName {
		dest = append(dest, &post.AuthorName)
	}
	return post, row.Scan(dest...)
}

// Create implements calendar.ContentPostRepository.
func (r *contentPostRepository) Create(ctx context.Context, post calendar.ContentPost) (calendar.ContentPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO content_posts (title, body, channel, publish_date, status, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		post.Title, post.Body, post.Channel, post.PublishDate, post.Status, post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return calendar.ContentPost{}, fmt.Errorf("failed to create content post: %w", err)
	}

	return post, nil
}

// GetByID implements calendar.ContentPostRepository.
func (r *contentPostRepository) GetByID(ctx context.Context, id string) (calendar.ContentPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contentPostColumns + `,
			u.name AS author_name
		FROM content_posts cp
		LEFT JOIN users u ON u.id = cp.author_id
		WHERE cp.id = $1
	`

	post, err := scanContentPost(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ContentPost{}, calendar.ErrPostNotFound
		}
		return calendar.ContentPost{}, fmt.Errorf("failed to get content post by ID: %w", err)
	}

	return post, nil
}

// List implements calendar.ContentPostRepository.
func (r *contentPostRepository) List(ctx context.Context, filter calendar.PostFilter) ([]calendar.ContentPost, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	var args []interface{}

	if filter.Channel != "" {
		args = append(args, filter.Channel)
		where += fmt.Sprintf(" AND cp.channel = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND cp.status = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(" AND cp.publish_date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(" AND cp.publish_date <= $%d", len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM content_posts cp WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count content posts: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s,
			u.name AS author_name
		FROM content_posts cp
		LEFT JOIN users u ON u.id = cp.author_id
		WHERE %s
		ORDER BY cp.publish_date ASC
		LIMIT $%d OFFSET $%d
	`, contentPostColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list content posts: %w", err)
	}
	defer rows.Close()

	var posts []calendar.ContentPost
	for rows.Next() {
		post, err := scanContentPost(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan content post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, total, rows.Err()
}

// Update implements calendar.ContentPostRepository.
func (r *contentPostRepository) Update(ctx context.Context, req calendar.UpdatePostRequest) error {
	q := GetQuerier(ctx, r.db)

	setClause := "updated_at = NOW()"
	var args []interface{}

	if req.Title != nil {
		args = append(args, *req.Title)
		setClause += fmt.Sprintf(", title = $%d", len(args))
	}
	if req.Body != nil {
		args = append(args, *req.Body)
		setClause += fmt.Sprintf(", body = $%d", len(args))
	}
	if req.Channel != nil {
		args = append(args, *req.Channel)
		setClause += fmt.Sprintf(", channel = $%d", len(args))
	}
	if req.PublishDate != nil {
		args = append(args, *req.PublishDate)
		setClause += fmt.Sprintf(", publish_date = $%d", len(args))
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		setClause += fmt.Sprintf(", status = $%d", len(args))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE content_posts SET %s WHERE id = $%d", setClause, len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update content post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return calendar.ErrPostNotFound
	}

	return nil
}

// Delete implements calendar.ContentPostRepository.
func (r *contentPostRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM content_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return calendar.ErrPostNotFound
	}

	return nil
}
