package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/minaworks/aptitud-tracker/internal/model"
)

func usuarioIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "usuarioId"))
	return model.ID(id), err
}

func examenIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "examenId"))
	return model.ID(id), err
}

func establecimientoIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "establecimientoId"))
	return model.ID(id), err
}

// fechaQueryParam reads the optional "fecha" reference-date parameter.
// Evaluations default to the current date when it is absent.
func fechaQueryParam(r *http.Request) (model.Fecha, error) {
	val, ok := r.URL.Query().Get("fecha"), r.URL.Query().Has("fecha")
	if !ok {
		return model.FechaHoy(), nil
	}
	return model.ParseFecha(val)
}
