package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("author does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError reports whether err is a foreign key violation on the
// named constraint.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" && pqErr.Constraint == name
	}

	return false
}

func (m *BlogModel) insert(ctx context.Context, title, content string, authorID uuid.UUID) (*Blog, error) {
	query := `
		INSERT INTO blogs (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author_id, created_at, updated_at`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, title, content, authorID).Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case ForeignKeyError(err, "blogs_author_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) getBlogByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
		WHERE id = $1`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, id).Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) updateBlog(ctx context.Context, id uuid.UUID, title, content string) (*Blog, error) {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3
		RETURNING id, title, content, author_id, created_at, updated_at`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, title, content, id).Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// an empty table must list as [], not null
	blogs := []Blog{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}
