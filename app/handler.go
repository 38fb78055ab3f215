package main

import (
	"errors"
	"net/http"

	"github.com/jarvis787/scribe/internal/blogservice"
	"github.com/jarvis787/scribe/internal/common"
	"github.com/jarvis787/scribe/internal/userservice"
)

type signupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var input signupRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.CreateUser(r.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r)
		default:
			// duplicate email and connectivity failures alike surface as a
			// generic signup error
			app.storeErrorResponse(w, r, err, "error while signing up")
		}
		return
	}

	jwt, err := app.tokenService.Issue(user.ID)
	if err != nil {
		app.storeErrorResponse(w, r, err, "error while signing up")
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"jwt": jwt}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) signinHandler(w http.ResponseWriter, r *http.Request) {
	var input signinRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.AuthenticateUser(r.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r)
		case errors.Is(err, userservice.ErrNotFound):
			app.invalidCredentialsErrorResponse(w, r)
		default:
			app.storeErrorResponse(w, r, err, "error while signing in")
		}
		return
	}

	jwt, err := app.tokenService.Issue(user.ID)
	if err != nil {
		app.storeErrorResponse(w, r, err, "error while signing in")
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"jwt": jwt}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Pointer fields distinguish an absent field (rejected by validation)
// from an empty string (accepted and stored).
type createBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input createBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	userID, ok := app.getUserContext(r)
	if !ok {
		app.unauthorizedErrorResponse(w, r)
		return
	}

	blog, err := app.blogService.CreateBlog(r.Context(), &blogservice.CreateBlogRequest{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: userID,
	})
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r)
		default:
			app.storeErrorResponse(w, r, err, "error while creating the blog")
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"id": blog.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBlogHandler reuses the create-blog payload rules: the ID comes from
// the path, and no authorship check is made on purpose.
func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input createBlogRequest

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.UpdateBlog(r.Context(), id, input.Title, input.Content)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.storeErrorResponse(w, r, err, "error while updating the blog")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// getBlogHandler also serves the bulk listing: httprouter cannot mix a
// static /blog/bulk route with the :id wildcard.
func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	if param := httprouterParam(r, "id"); param == "bulk" {
		app.listBlogsHandler(w, r)
		return
	}

	id, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		switch {
		// a missing blog is not an error: the blog value is simply null
		case errors.Is(err, blogservice.ErrRecordNotFound):
			err = app.writeJSON(w, http.StatusOK, envelope{"blog": nil}, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		default:
			app.storeErrorResponse(w, r, err, "error while getting the blog")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.storeErrorResponse(w, r, err, "error while getting the blogs")
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
