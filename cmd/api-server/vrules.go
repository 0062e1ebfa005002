package main

import (
	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/minaworks/aptitud-tracker/internal/validator"
)

// Validation rules

func validateNombre(v *validator.Validator, nombre string) {
	v.CheckField(validator.NotBlank(nombre), "nombre", "cannot be blank")
	v.CheckField(validator.MaxRunes(nombre, 200), "nombre", "must be at most 200 characters")
}

func validateDocumento(v *validator.Validator, documento string) {
	v.CheckField(len(documento) == 8, "documento", "must be exactly 8 digits")
	v.CheckField(validator.IsDigits(documento), "documento", "must contain only digits")
}

func validateEmail(v *validator.Validator, email *string) {
	if email == nil {
		return
	}
	v.CheckField(validator.IsEmail(*email), "email", "must be a valid email address")
}

func validateTipoExamen(v *validator.Validator, tipo model.TipoExamen) {
	v.CheckField(tipo.Valid(), "tipoExamen", "must be a known exam type")
}

func validateFechasExamen(v *validator.Validator, emision, caducidad model.Fecha) {
	v.CheckField(!emision.IsZero(), "fechaEmision", "cannot be blank")
	v.CheckField(!caducidad.IsZero(), "fechaCaducidad", "cannot be blank")
	if emision.IsZero() || caducidad.IsZero() {
		return
	}
	v.CheckField(!caducidad.Antes(emision), "fechaCaducidad", "cannot be before fechaEmision")
}

func validateExamenesRequeridos(v *validator.Validator, requeridos []requestExamenRequerido) {
	tipos := make([]model.TipoExamen, 0, len(requeridos))
	for _, requerido := range requeridos {
		validateTipoExamen(v, requerido.Tipo)
		tipos = append(tipos, requerido.Tipo)
	}
	v.CheckField(validator.NoDuplicates(tipos), "examenesRequeridos", "cannot contain the same tipoExamen twice")
}
