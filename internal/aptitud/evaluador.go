package aptitud

import "github.com/minaworks/aptitud-tracker/internal/model"

// EstadoRequerido reports one required exam type of an establecimiento
// against a usuario's records. Estado is nil when no record of the type
// exists.
type EstadoRequerido struct {
	Tipo     model.TipoExamen    `json:"tipoExamen"`
	Estado   *model.EstadoExamen `json:"estado"`
	Presente bool                `json:"presente"`
}

// Satisfecho reports whether this requirement counts toward the overall
// verdict. A record that is POR_VENCER has not expired yet, so it still
// satisfies the requirement.
func (er EstadoRequerido) Satisfecho() bool {
	return er.Presente && er.Estado != nil && *er.Estado != model.EstadoVencido
}

type InformeAptitud struct {
	Usuario               model.ID          `json:"usuarioId"`
	NombreUsuario         string            `json:"nombreUsuario"`
	Establecimiento       model.ID          `json:"establecimientoId"`
	NombreEstablecimiento string            `json:"nombreEstablecimiento"`
	Apto                  bool              `json:"apto"`
	Examenes              []EstadoRequerido `json:"examenes"`
}

// Evaluar computes the fitness verdict for one (usuario, establecimiento)
// pair at the given date. The report lists the establecimiento's required
// exams in declaration order; apto is true only when every one of them is
// satisfied, which makes an establecimiento without required exams
// trivially apto for everyone.
func (e Evaluador) Evaluar(
	usuario model.Usuario,
	examenes []model.Examen,
	establecimiento model.Establecimiento,
	ahora model.Fecha,
) InformeAptitud {
	informe := InformeAptitud{
		Usuario:               usuario.ID,
		NombreUsuario:         usuario.Nombre,
		Establecimiento:       establecimiento.ID,
		NombreEstablecimiento: establecimiento.Nombre,
		Apto:                  true,
		Examenes:              make([]EstadoRequerido, 0, len(establecimiento.ExamenesRequeridos)),
	}

	for _, requerido := range establecimiento.ExamenesRequeridos {
		resultado := EstadoRequerido{Tipo: requerido.Tipo}

		if examen, ok := SeleccionarVigente(examenes, requerido.Tipo); ok {
			estado := e.Clasificar(examen, ahora)
			resultado.Presente = true
			resultado.Estado = &estado
		}

		if !resultado.Satisfecho() {
			informe.Apto = false
		}

		informe.Examenes = append(informe.Examenes, resultado)
	}

	return informe
}
