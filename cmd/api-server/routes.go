package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minaworks/aptitud-tracker/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "Aptitud Tracker"
	docs.SwaggerInfo.Description = "Web API - seguimiento de aptitud médica para minas"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr("localhost", app.config.httpPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)

	mux.Get("/api/v1/usuarios", app.handleListUsuarios)
	mux.Get("/api/v1/usuarios/{usuarioId}", app.handleGetUsuario)
	mux.Post("/api/v1/usuarios", app.handleAddUsuario)
	mux.Put("/api/v1/usuarios/{usuarioId}", app.handleUpdateUsuario)
	mux.Delete("/api/v1/usuarios/{usuarioId}", app.handleDeleteUsuario)

	mux.Get("/api/v1/examenes/usuario/{usuarioId}", app.handleListExamenesByUsuario)
	mux.Get("/api/v1/examenes/{examenId}", app.handleGetExamen)
	mux.Post("/api/v1/examenes", app.handleAddExamen)
	mux.Put("/api/v1/examenes/{examenId}", app.handleUpdateExamen)
	mux.Delete("/api/v1/examenes/{examenId}", app.handleDeleteExamen)

	mux.Get("/api/v1/establecimientos", app.handleListEstablecimientos)
	mux.Get("/api/v1/establecimientos/{establecimientoId}", app.handleGetEstablecimiento)
	mux.Post("/api/v1/establecimientos", app.handleAddEstablecimiento)
	mux.Put("/api/v1/establecimientos/{establecimientoId}", app.handleUpdateEstablecimiento)
	mux.Delete("/api/v1/establecimientos/{establecimientoId}", app.handleDeleteEstablecimiento)

	mux.Get("/api/v1/aptitud/usuario/{usuarioId}/establecimiento/{establecimientoId}", app.handleVerificarAptitud)
	mux.Get("/api/v1/aptitud/resumen", app.handleResumenPorUsuario)
	mux.Get("/api/v1/aptitud/resumen/establecimientos", app.handleResumenPorEstablecimiento)
	mux.Get("/api/v1/aptitud/resumen/totales", app.handleResumenTotales)

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr("localhost", app.config.httpPort)+"/swagger/doc.json",
		), // The url pointing to API definition
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
