package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api/v1/health", app.healthCheckHandler)

	// user routes are not gated by the auth middleware
	router.HandlerFunc(http.MethodPost, "/api/v1/user/signup", app.signupHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/user/signin", app.signinHandler)

	// blog routes. httprouter cannot register the static /blog/bulk path
	// next to the :id wildcard, so getBlogHandler dispatches "bulk" itself.
	router.HandlerFunc(http.MethodPost, "/api/v1/blog/", app.requireAuth(app.createBlogHandler))
	router.HandlerFunc(http.MethodPut, "/api/v1/blog/:id", app.requireAuth(app.updateBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/blog/:id", app.requireAuth(app.getBlogHandler))

	return app.recoverPanic(app.logRequest(router))
}
