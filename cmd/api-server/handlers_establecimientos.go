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

// Handle List Establecimientos
// @Summary List Establecimientos
// @Description List all establecimientos with their required exams
// @Tags establecimientos
// @Produce json
// @Success 200 {array} model.Establecimiento
// @Failure 500 {object} any "Internal server error"
// @Router /establecimientos [get]
func (app *application) handleListEstablecimientos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dao := database.NewEstablecimientoDAO(app.handlerLogger(r), app.db)

	establecimientos, err := dao.Find(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, establecimientos); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Establecimiento
// @Summary Get Establecimiento
// @Description Get a single establecimiento by id
// @Tags establecimientos
// @Produce json
// @Param establecimientoId path int true "Establecimiento ID"
// @Success 200 {object} model.Establecimiento
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Establecimiento not found"
// @Failure 500 {object} any "Internal server error"
// @Router /establecimientos/{establecimientoId} [get]
func (app *application) handleGetEstablecimiento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	establecimientoID, err := establecimientoIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewEstablecimientoDAO(app.handlerLogger(r), app.db)

	establecimiento, err := dao.Get(ctx, establecimientoID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, establecimiento); err != nil {
		app.serverError(w, r, err)
	}
}

type requestExamenRequerido struct {
	Tipo          model.TipoExamen `json:"tipoExamen"`
	Observaciones *string          `json:"observaciones"`
}

type requestAddEstablecimiento struct {
	Nombre             string                   `json:"nombre"`
	Ubicacion          *string                  `json:"ubicacion"`
	Descripcion        *string                  `json:"descripcion"`
	ExamenesRequeridos []requestExamenRequerido `json:"examenesRequeridos"`
}

// Handle Add Establecimiento
// @Summary Add Establecimiento
// @Description Register a new establecimiento (mina) with its required exams
// @Tags establecimientos
// @Accept json
// @Produce json
// @Param input body main.requestAddEstablecimiento true "Establecimiento data"
// @Success 201 {object} model.Establecimiento
// @Failure 400 {object} any "Bad request input"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /establecimientos [post]
func (app *application) handleAddEstablecimiento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	var input requestAddEstablecimiento
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateNombre(&v, input.Nombre)
	validateExamenesRequeridos(&v, input.ExamenesRequeridos)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewEstablecimientoDAO(logger, app.db)

	establecimientoID, err := dao.Insert(ctx, database.InsertEstablecimientoDTO{
		Nombre:             input.Nombre,
		Ubicacion:          input.Ubicacion,
		Descripcion:        input.Descripcion,
		ExamenesRequeridos: requeridosToDTO(input.ExamenesRequeridos),
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	establecimiento, err := dao.Get(ctx, establecimientoID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, establecimiento); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateEstablecimiento struct {
	Nombre             *string                  `json:"nombre"`
	Ubicacion          *string                  `json:"ubicacion"`
	Descripcion        *string                  `json:"descripcion"`
	ExamenesRequeridos []requestExamenRequerido `json:"examenesRequeridos"`
}

// Handle Update Establecimiento
// @Summary Update Establecimiento
// @Description Update an establecimiento; when examenesRequeridos is given the whole set is replaced
// @Tags establecimientos
// @Accept json
// @Produce json
// @Param establecimientoId path int true "Establecimiento ID"
// @Param input body main.requestUpdateEstablecimiento true "Fields to update"
// @Success 200 {object} model.Establecimiento
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Establecimiento not found"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /establecimientos/{establecimientoId} [put]
func (app *application) handleUpdateEstablecimiento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	establecimientoID, err := establecimientoIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdateEstablecimiento
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if input.Nombre != nil {
		validateNombre(&v, *input.Nombre)
	}
	validateExamenesRequeridos(&v, input.ExamenesRequeridos)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewEstablecimientoDAO(logger, app.db)

	if _, err := dao.Get(ctx, establecimientoID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	err = dao.Update(ctx, establecimientoID, database.UpdateEstablecimientoDTO{
		Nombre:             input.Nombre,
		Ubicacion:          input.Ubicacion,
		Descripcion:        input.Descripcion,
		ExamenesRequeridos: requeridosToDTO(input.ExamenesRequeridos),
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	establecimiento, err := dao.Get(ctx, establecimientoID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, establecimiento); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Establecimiento
// @Summary Delete Establecimiento
// @Description Delete an establecimiento and its required-exam set
// @Tags establecimientos
// @Produce json
// @Param establecimientoId path int true "Establecimiento ID"
// @Success 204
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Establecimiento not found"
// @Failure 500 {object} any "Internal server error"
// @Router /establecimientos/{establecimientoId} [delete]
func (app *application) handleDeleteEstablecimiento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	establecimientoID, err := establecimientoIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewEstablecimientoDAO(app.handlerLogger(r), app.db)

	if _, err := dao.Get(ctx, establecimientoID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := dao.Delete(ctx, establecimientoID); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func requeridosToDTO(requeridos []requestExamenRequerido) []database.RequeridoDTO {
	if requeridos == nil {
		return nil
	}

	dtos := make([]database.RequeridoDTO, 0, len(requeridos))
	for _, requerido := range requeridos {
		dtos = append(dtos, database.RequeridoDTO{
			Tipo:          requerido.Tipo,
			Observaciones: requerido.Observaciones,
		})
	}
	return dtos
}
