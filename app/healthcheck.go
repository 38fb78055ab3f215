package main

import "net/http"

// healthCheckHandler reports liveness. It never touches the database or the
// broker: a degraded dependency should not flip the whole service unhealthy.
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"service":     "scribe",
		"status":      "available",
		"environment": app.config.Environment,
		"version":     app.config.Version,
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.logger.Error(err.Error())
		http.Error(w, "the server encountered a problem and could not process your request", http.StatusInternalServerError)
	}
}
