// Package aptitud decides whether a usuario is fit to work at an
// establecimiento. Everything here is pure domain logic over snapshots of
// the stored data plus a reference date: no I/O, no side effects.
package aptitud

import (
	"github.com/minaworks/aptitud-tracker/internal/model"
)

// DefaultVentanaDias is the lead time, in days, during which a still-valid
// exam is flagged POR_VENCER.
const DefaultVentanaDias = 30

type Evaluador struct {
	// VentanaDias is the POR_VENCER warning window in whole days.
	VentanaDias int
}

func NewEvaluador(ventanaDias int) Evaluador {
	if ventanaDias <= 0 {
		ventanaDias = DefaultVentanaDias
	}
	return Evaluador{VentanaDias: ventanaDias}
}

// Clasificar returns the validity state of an exam at the given date. The
// expiry date is an exclusive upper bound: on fecha_caducidad itself the
// exam is already VENCIDO.
func (e Evaluador) Clasificar(examen model.Examen, ahora model.Fecha) model.EstadoExamen {
	if !ahora.Antes(examen.FechaCaducidad) {
		return model.EstadoVencido
	}
	if ahora.Hasta(examen.FechaCaducidad) <= e.VentanaDias {
		return model.EstadoPorVencer
	}
	return model.EstadoVigente
}
