package main

import (
	"testing"
	"time"

	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/minaworks/aptitud-tracker/internal/validator"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumento(t *testing.T) {
	tests := []struct {
		documento string
		valid     bool
	}{
		{"12345678", true},
		{"00000001", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"", false},
		{"12 45678", false},
	}

	for _, tt := range tests {
		t.Run(tt.documento, func(t *testing.T) {
			var v validator.Validator
			validateDocumento(&v, tt.documento)
			require.Equal(t, !tt.valid, v.HasErrors())
		})
	}
}

func TestValidateFechasExamen(t *testing.T) {
	emision := model.NewFecha(2024, time.January, 1)

	var v validator.Validator
	validateFechasExamen(&v, emision, model.NewFecha(2025, time.January, 1))
	require.False(t, v.HasErrors())

	v = validator.Validator{}
	validateFechasExamen(&v, emision, emision)
	require.False(t, v.HasErrors(), "same-day emission and expiry is allowed")

	v = validator.Validator{}
	validateFechasExamen(&v, emision, model.NewFecha(2023, time.December, 31))
	require.True(t, v.HasErrors())
	require.Contains(t, v.FieldErrors, "fechaCaducidad")
}

func TestValidateExamenesRequeridos(t *testing.T) {
	var v validator.Validator
	validateExamenesRequeridos(&v, []requestExamenRequerido{
		{Tipo: model.ExamenMedicoGeneral},
		{Tipo: model.ExamenAudiometrico},
	})
	require.False(t, v.HasErrors())

	v = validator.Validator{}
	validateExamenesRequeridos(&v, []requestExamenRequerido{
		{Tipo: model.ExamenMedicoGeneral},
		{Tipo: model.ExamenMedicoGeneral},
	})
	require.True(t, v.HasErrors())
	require.Contains(t, v.FieldErrors, "examenesRequeridos")
}

func TestValidateEmail(t *testing.T) {
	var v validator.Validator
	validateEmail(&v, nil)
	require.False(t, v.HasErrors(), "email is optional")

	email := "ana@example.com"
	v = validator.Validator{}
	validateEmail(&v, &email)
	require.False(t, v.HasErrors())

	malo := "no-es-un-email"
	v = validator.Validator{}
	validateEmail(&v, &malo)
	require.True(t, v.HasErrors())
}
