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

// Handle List Usuarios
// @Summary List Usuarios
// @Description List all registered usuarios
// @Tags usuarios
// @Produce json
// @Success 200 {array} model.Usuario
// @Failure 500 {object} any "Internal server error"
// @Router /usuarios [get]
func (app *application) handleListUsuarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dao := database.NewUsuarioDAO(app.handlerLogger(r), app.db)

	usuarios, err := dao.Find(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, usuarios); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Usuario
// @Summary Get Usuario
// @Description Get a single usuario by id
// @Tags usuarios
// @Produce json
// @Param usuarioId path int true "Usuario ID"
// @Success 200 {object} model.Usuario
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Usuario not found"
// @Failure 500 {object} any "Internal server error"
// @Router /usuarios/{usuarioId} [get]
func (app *application) handleGetUsuario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	usuarioID, err := usuarioIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUsuarioDAO(app.handlerLogger(r), app.db)

	usuario, err := dao.Get(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, usuario); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddUsuario struct {
	Nombre    string  `json:"nombre"`
	Documento string  `json:"documento"`
	Email     *string `json:"email"`
}

// Handle Add Usuario
// @Summary Add Usuario
// @Description Register a new usuario
// @Tags usuarios
// @Accept json
// @Produce json
// @Param input body main.requestAddUsuario true "Usuario data"
// @Success 201 {object} model.Usuario
// @Failure 400 {object} any "Bad request input"
// @Failure 409 {object} any "Documento already registered"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /usuarios [post]
func (app *application) handleAddUsuario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	var input requestAddUsuario
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateNombre(&v, input.Nombre)
	validateDocumento(&v, input.Documento)
	validateEmail(&v, input.Email)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewUsuarioDAO(logger, app.db)

	usuarioID, err := dao.Insert(ctx, database.InsertUsuarioDTO{
		Nombre:    input.Nombre,
		Documento: input.Documento,
		Email:     input.Email,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	usuario, err := dao.Get(ctx, usuarioID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, usuario); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateUsuario struct {
	Nombre    *string `json:"nombre"`
	Documento *string `json:"documento"`
	Email     *string `json:"email"`
}

// Handle Update Usuario
// @Summary Update Usuario
// @Description Update an existing usuario
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuarioId path int true "Usuario ID"
// @Param input body main.requestUpdateUsuario true "Fields to update"
// @Success 200 {object} model.Usuario
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Usuario not found"
// @Failure 409 {object} any "Documento already registered"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /usuarios/{usuarioId} [put]
func (app *application) handleUpdateUsuario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.handlerLogger(r)

	usuarioID, err := usuarioIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdateUsuario
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if input.Nombre != nil {
		validateNombre(&v, *input.Nombre)
	}
	if input.Documento != nil {
		validateDocumento(&v, *input.Documento)
	}
	validateEmail(&v, input.Email)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewUsuarioDAO(logger, app.db)

	if _, err := dao.Get(ctx, usuarioID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	err = dao.Update(ctx, usuarioID, database.UpdateUsuarioDTO{
		Nombre:    input.Nombre,
		Documento: input.Documento,
		Email:     input.Email,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	usuario, err := dao.Get(ctx, usuarioID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, usuario); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Usuario
// @Summary Delete Usuario
// @Description Delete a usuario and, by cascade, its examenes
// @Tags usuarios
// @Produce json
// @Param usuarioId path int true "Usuario ID"
// @Success 204
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Usuario not found"
// @Failure 500 {object} any "Internal server error"
// @Router /usuarios/{usuarioId} [delete]
func (app *application) handleDeleteUsuario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	usuarioID, err := usuarioIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUsuarioDAO(app.handlerLogger(r), app.db)

	if _, err := dao.Get(ctx, usuarioID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := dao.Delete(ctx, usuarioID); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
