package main

import (
	"errors"
	"net/http"

	"github.com/minaworks/aptitud-tracker/internal/database"
	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/minaworks/aptitud-tracker/internal/request"
	"github.com/minaworks/aptitud-tracker/internal/response"
	"github.com/minaworks/aptitud-tracker/internal/validator"
)

// Handle List Examenes By Usuario
// @Summary List Examenes of a Usuario
// @Description List the full exam history of a usuario
// @Tags examenes
// @Produce json
// @Param usuarioId path int true "Usuario ID"
// @Success 200 {array} model.Examen
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Usuario not found"
// @Failure 500 {object} any "Internal server error"
// @Router /examenes/usuario/{usuarioId} [get]
func (app *application) handleListExamenesByUsuario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	usuarioID, err := usuarioIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	usuarioDAO := database.NewUsuarioDAO(logger, app.db)
	if _, err := usuarioDAO.Get(ctx, usuarioID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	dao := database.NewExamenDAO(logger, app.db)

	examenes, err := dao.FindByUsuario(ctx, usuarioID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, examenes); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Examen
// @Summary Get Examen
// @Description Get a single exam record by id
// @Tags examenes
// @Produce json
// @Param examenId path int true "Examen ID"
// @Success 200 {object} model.Examen
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Examen not found"
// @Failure 500 {object} any "Internal server error"
// @Router /examenes/{examenId} [get]
func (app *application) handleGetExamen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	examenID, err := examenIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewExamenDAO(app.handlerLogger(r), app.db)

	examen, err := dao.Get(ctx, examenID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, examen); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddExamen struct {
	Usuario        model.ID         `json:"usuarioId"`
	Tipo           model.TipoExamen `json:"tipoExamen"`
	FechaEmision   model.Fecha      `json:"fechaEmision"`
	FechaCaducidad model.Fecha      `json:"fechaCaducidad"`
	Observaciones  *string          `json:"observaciones"`
}

// Handle Add Examen
// @Summary Add Examen
// @Description Record a new exam for a usuario
// @Tags examenes
// @Accept json
// @Produce json
// @Param input body main.requestAddExamen true "Examen data"
// @Success 201 {object} model.Examen
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Usuario not found"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /examenes [post]
func (app *application) handleAddExamen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	var input requestAddExamen
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateTipoExamen(&v, input.Tipo)
	validateFechasExamen(&v, input.FechaEmision, input.FechaCaducidad)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewExamenDAO(logger, app.db)

	examenID, err := dao.Insert(ctx, database.InsertExamenDTO{
		Usuario:        input.Usuario,
		Tipo:           input.Tipo,
		FechaEmision:   input.FechaEmision,
		FechaCaducidad: input.FechaCaducidad,
		Observaciones:  input.Observaciones,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	examen, err := dao.Get(ctx, examenID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, examen); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateExamen struct {
	Tipo           *model.TipoExamen `json:"tipoExamen"`
	FechaEmision   *model.Fecha      `json:"fechaEmision"`
	FechaCaducidad *model.Fecha      `json:"fechaCaducidad"`
	Observaciones  *string           `json:"observaciones"`
}

// Handle Update Examen
// @Summary Update Examen
// @Description Update an existing exam record
// @Tags examenes
// @Accept json
// @Produce json
// @Param examenId path int true "Examen ID"
// @Param input body main.requestUpdateExamen true "Fields to update"
// @Success 200 {object} model.Examen
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Examen not found"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /examenes/{examenId} [put]
func (app *application) handleUpdateExamen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	examenID, err := examenIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdateExamen
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewExamenDAO(logger, app.db)

	examen, err := dao.Get(ctx, examenID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	// The invariant is checked against the merged record, so updating a
	// single date cannot slip an inverted range past validation.
	emision := examen.FechaEmision
	if input.FechaEmision != nil {
		emision = *input.FechaEmision
	}
	caducidad := examen.FechaCaducidad
	if input.FechaCaducidad != nil {
		caducidad = *input.FechaCaducidad
	}

	var v validator.Validator
	validateFechasExamen(&v, emision, caducidad)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	err = dao.Update(ctx, examenID, database.UpdateExamenDTO{
		Tipo:           input.Tipo,
		FechaEmision:   input.FechaEmision,
		FechaCaducidad: input.FechaCaducidad,
		Observaciones:  input.Observaciones,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	examen, err = dao.Get(ctx, examenID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, examen); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Examen
// @Summary Delete Examen
// @Description Delete an exam record
// @Tags examenes
// @Produce json
// @Param examenId path int true "Examen ID"
// @Success 204
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Examen not found"
// @Failure 500 {object} any "Internal server error"
// @Router /examenes/{examenId} [delete]
func (app *application) handleDeleteExamen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	examenID, err := examenIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewExamenDAO(app.handlerLogger(r), app.db)

	if _, err := dao.Get(ctx, examenID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := dao.Delete(ctx, examenID); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
