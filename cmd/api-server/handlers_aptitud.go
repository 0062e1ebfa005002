package main

import (
	"errors"
	"net/http"

	"github.com/minaworks/aptitud-tracker/internal/aptitud"
	"github.com/minaworks/aptitud-tracker/internal/database"
	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/minaworks/aptitud-tracker/internal/response"
)

func (app *application) evaluador() aptitud.Evaluador {
	return aptitud.NewEvaluador(app.config.aptitud.ventanaDias)
}

// Handle Verificar Aptitud
// @Summary Verificar Aptitud
// @Description Evaluate whether a usuario is fit to work at an establecimiento
// @Tags aptitud
// @Produce json
// @Param usuarioId path int true "Usuario ID"
// @Param establecimientoId path int true "Establecimiento ID"
// @Param fecha query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} aptitud.InformeAptitud
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Usuario or establecimiento not found"
// @Failure 500 {object} any "Internal server error"
// @Router /aptitud/usuario/{usuarioId}/establecimiento/{establecimientoId} [get]
func (app *application) handleVerificarAptitud(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	usuarioID, err := usuarioIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	establecimientoID, err := establecimientoIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	ahora, err := fechaQueryParam(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	usuarioDAO := database.NewUsuarioDAO(logger, app.db)

	usuario, err := usuarioDAO.Get(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	establecimientoDAO := database.NewEstablecimientoDAO(logger, app.db)

	establecimiento, err := establecimientoDAO.Get(ctx, establecimientoID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	examenDAO := database.NewExamenDAO(logger, app.db)

	examenes, err := examenDAO.FindByUsuario(ctx, usuarioID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	informe := app.evaluador().Evaluar(usuario, examenes, establecimiento, ahora)

	logger.Debug("aptitud evaluated",
		"usuarioId", usuario.ID,
		"establecimientoId", establecimiento.ID,
		"fecha", ahora.String(),
		"apto", informe.Apto,
	)

	if err := response.JSON(w, http.StatusOK, informe); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Resumen Por Usuario
// @Summary Resumen de Aptitud por Usuario
// @Description For every usuario, list every establecimiento with its fitness verdict
// @Tags aptitud
// @Produce json
// @Param fecha query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} aptitud.ResumenUsuario
// @Failure 400 {object} any "Bad request input"
// @Failure 500 {object} any "Internal server error"
// @Router /aptitud/resumen [get]
func (app *application) handleResumenPorUsuario(w http.ResponseWriter, r *http.Request) {
	usuarios, establecimientos, examenes, ahora, ok := app.loadResumenSnapshot(w, r)
	if !ok {
		return
	}

	resumen := app.evaluador().ResumenPorUsuario(usuarios, establecimientos, examenes, ahora)

	if err := response.JSON(w, http.StatusOK, resumen); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Resumen Por Establecimiento
// @Summary Resumen de Aptitud por Establecimiento
// @Description Per establecimiento, its required exams and the count of usuarios currently apto
// @Tags aptitud
// @Produce json
// @Param fecha query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} aptitud.ResumenEstablecimiento
// @Failure 400 {object} any "Bad request input"
// @Failure 500 {object} any "Internal server error"
// @Router /aptitud/resumen/establecimientos [get]
func (app *application) handleResumenPorEstablecimiento(w http.ResponseWriter, r *http.Request) {
	usuarios, establecimientos, examenes, ahora, ok := app.loadResumenSnapshot(w, r)
	if !ok {
		return
	}

	resumen := app.evaluador().ResumenPorEstablecimiento(usuarios, establecimientos, examenes, ahora)

	if err := response.JSON(w, http.StatusOK, resumen); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Resumen Totales
// @Summary Totales del Resumen de Aptitud
// @Description Dashboard counters: total usuarios, usuarios apto at one or more establecimientos, total establecimientos
// @Tags aptitud
// @Produce json
// @Param fecha query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} aptitud.Totales
// @Failure 400 {object} any "Bad request input"
// @Failure 500 {object} any "Internal server error"
// @Router /aptitud/resumen/totales [get]
func (app *application) handleResumenTotales(w http.ResponseWriter, r *http.Request) {
	usuarios, establecimientos, examenes, ahora, ok := app.loadResumenSnapshot(w, r)
	if !ok {
		return
	}

	resumen := app.evaluador().ResumenPorUsuario(usuarios, establecimientos, examenes, ahora)
	totales := aptitud.CalcularTotales(resumen, len(establecimientos))

	if err := response.JSON(w, http.StatusOK, totales); err != nil {
		app.serverError(w, r, err)
	}
}

// loadResumenSnapshot fetches the full dataset the aggregate reports run
// over. On failure it writes the error response and returns ok=false.
func (app *application) loadResumenSnapshot(w http.ResponseWriter, r *http.Request) (
	usuarios []model.Usuario,
	establecimientos []model.Establecimiento,
	examenes []model.Examen,
	ahora model.Fecha,
	ok bool,
) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	ahora, err := fechaQueryParam(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	usuarios, err = database.NewUsuarioDAO(logger, app.db).Find(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	establecimientos, err = database.NewEstablecimientoDAO(logger, app.db).Find(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	examenes, err = database.NewExamenDAO(logger, app.db).Find(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	return usuarios, establecimientos, examenes, ahora, true
}
