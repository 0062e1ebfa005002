package aptitud

import "github.com/minaworks/aptitud-tracker/internal/model"

// SeleccionarVigente picks the single record of the given type that
// represents the usuario's current standing: the one expiring last. Ties are
// broken by latest fecha_emision, then by highest id, so the result never
// depends on input order. The second return is false when the usuario holds
// no record of the type.
func SeleccionarVigente(examenes []model.Examen, tipo model.TipoExamen) (model.Examen, bool) {
	var mejor model.Examen
	encontrado := false

	for _, examen := range examenes {
		if examen.Tipo != tipo {
			continue
		}
		if !encontrado || masVigente(examen, mejor) {
			mejor = examen
			encontrado = true
		}
	}

	return mejor, encontrado
}

func masVigente(a, b model.Examen) bool {
	if !a.FechaCaducidad.Equal(b.FechaCaducidad.Time) {
		return b.FechaCaducidad.Antes(a.FechaCaducidad)
	}
	if !a.FechaEmision.Equal(b.FechaEmision.Time) {
		return b.FechaEmision.Antes(a.FechaEmision)
	}
	return a.ID > b.ID
}
