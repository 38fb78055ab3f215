package blogservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jarvis787/scribe/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreateBlogRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	AuthorID uuid.UUID `json:"authorId"`
}

// CreateBlog creates a new blog post bound to the authenticated author.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insert(ctx, *req.Title, *req.Content, req.AuthorID)
}

// GetBlogByID returns a blog post by its ID, or ErrRecordNotFound.
func (s *BlogService) GetBlogByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	return s.m.getBlogByID(ctx, id)
}

// UpdateBlog replaces title and content of an existing post. The update is
// keyed only by ID: any authenticated caller may update any post, and a
// nonexistent ID fails with ErrRecordNotFound instead of creating a record.
func (s *BlogService) UpdateBlog(ctx context.Context, id uuid.UUID, title, content *string) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, title)
	validateContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateBlog(ctx, id, *title, *content)
}

// GetBlogs returns every blog post. The result set is unbounded.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}
