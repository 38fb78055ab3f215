package main

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("valid signup", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/user/signup", map[string]any{
			"email":    "alice@example.com",
			"password": "secret1",
			"name":     "Alice",
		}, nil)

		assert.Equal(t, http.StatusCreated, status)
		assert.NotEmpty(t, body["jwt"])

		// the issued token resolves back to the stored user
		var storedID uuid.UUID
		err := db.QueryRow("SELECT id FROM users WHERE email = $1", "alice@example.com").Scan(&storedID)
		assert.NoError(t, err)

		userID, err := app.tokenService.Verify(body["jwt"].(string))
		assert.NoError(t, err)
		assert.Equal(t, storedID, userID)
	})

	t.Run("short password fails validation and creates no user", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/user/signup", map[string]any{
			"email":    "bob@example.com",
			"password": "short",
		}, nil)

		assert.Equal(t, http.StatusLengthRequired, status)
		assert.Equal(t, "inputs are incorrect", body["message"])

		var count int
		err := db.QueryRow("SELECT count(*) FROM users WHERE email = $1", "bob@example.com").Scan(&count)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("duplicate email", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/user/signup", map[string]any{
			"email":    "alice@example.com",
			"password": "secret2",
		}, nil)

		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "error while signing up", body["error"])

		var count int
		err := db.QueryRow("SELECT count(*) FROM users WHERE email = $1", "alice@example.com").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestSigninHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, _ := ts.post(t, "/api/v1/user/signup", map[string]any{
		"email":    "carol@example.com",
		"password": "secret1",
	}, nil)
	assert.Equal(t, http.StatusCreated, status)

	t.Run("correct credentials", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/user/signin", map[string]any{
			"email":    "carol@example.com",
			"password": "secret1",
		}, nil)

		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body["jwt"])
	})

	t.Run("wrong password", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/user/signin", map[string]any{
			"email":    "carol@example.com",
			"password": "wrong-1",
		}, nil)

		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "email or password incorrect", body["error"])
		assert.NotContains(t, body, "jwt")
	})

	t.Run("invalid payload", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/user/signin", map[string]any{
			"email":    "not-an-email",
			"password": "secret1",
		}, nil)

		assert.Equal(t, http.StatusLengthRequired, status)
		assert.Equal(t, "inputs are incorrect", body["message"])
	})
}

func TestBlogHandlers(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.post(t, "/api/v1/user/signup", map[string]any{
		"email":    "dave@example.com",
		"password": "secret1",
	}, nil)
	assert.Equal(t, http.StatusCreated, status)
	token := body["jwt"].(string)

	t.Run("missing authorization header is rejected", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/blog/", map[string]any{
			"title":   "T",
			"content": "C",
		}, nil)

		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Unauthorized", body["error"])
	})

	t.Run("bulk listing on empty store", func(t *testing.T) {
		status, _, body := ts.get(t, "/api/v1/blog/bulk", &token)

		assert.Equal(t, http.StatusOK, status)
		blogs, ok := body["blogs"].([]any)
		assert.True(t, ok, "blogs must be a JSON array, not null")
		assert.Empty(t, blogs)
	})

	var blogID string

	t.Run("create blog", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/blog/", map[string]any{
			"title":   "T",
			"content": "C",
		}, &token)

		assert.Equal(t, http.StatusCreated, status)
		assert.NotEmpty(t, body["id"])
		blogID = body["id"].(string)
	})

	t.Run("get blog by id", func(t *testing.T) {
		status, _, body := ts.get(t, "/api/v1/blog/"+blogID, &token)

		assert.Equal(t, http.StatusOK, status)
		blog := body["blog"].(map[string]any)
		assert.Equal(t, "T", blog["title"])
		assert.Equal(t, "C", blog["content"])
	})

	t.Run("create blog with missing title", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/blog/", map[string]any{
			"content": "C",
		}, &token)

		assert.Equal(t, http.StatusLengthRequired, status)
		assert.Equal(t, "inputs are incorrect", body["message"])
	})

	t.Run("update blog", func(t *testing.T) {
		status, _, body := ts.put(t, "/api/v1/blog/"+blogID, &token, map[string]any{
			"title":   "Updated",
			"content": "New content",
		})

		assert.Equal(t, http.StatusOK, status)
		blog := body["blog"].(map[string]any)
		assert.Equal(t, "Updated", blog["title"])
		assert.Equal(t, "New content", blog["content"])
	})

	t.Run("update nonexistent blog creates nothing", func(t *testing.T) {
		status, _, _ := ts.put(t, "/api/v1/blog/"+uuid.New().String(), &token, map[string]any{
			"title":   "T",
			"content": "C",
		})

		assert.Equal(t, http.StatusNotFound, status)

		var count int
		err := db.QueryRow("SELECT count(*) FROM blogs").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("get nonexistent blog returns null", func(t *testing.T) {
		status, _, body := ts.get(t, "/api/v1/blog/"+uuid.New().String(), &token)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "blog")
		assert.Nil(t, body["blog"])
	})

	t.Run("bulk listing", func(t *testing.T) {
		status, _, body := ts.get(t, "/api/v1/blog/bulk", &token)

		assert.Equal(t, http.StatusOK, status)
		blogs := body["blogs"].([]any)
		assert.Len(t, blogs, 1)
	})

	t.Run("empty title and content are accepted", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/v1/blog/", map[string]any{
			"title":   "",
			"content": "",
		}, &token)

		assert.Equal(t, http.StatusCreated, status)

		status, _, body = ts.get(t, "/api/v1/blog/"+body["id"].(string), &token)
		assert.Equal(t, http.StatusOK, status)
		blog := body["blog"].(map[string]any)
		assert.Empty(t, blog["title"])
		assert.Empty(t, blog["content"])
	})
}
