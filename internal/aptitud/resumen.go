package aptitud

import (
	"github.com/minaworks/aptitud-tracker/internal/model"

	"golang.org/x/exp/slices"
)

type ResumenMina struct {
	Establecimiento       model.ID `json:"establecimientoId"`
	NombreEstablecimiento string   `json:"nombreEstablecimiento"`
	Apto                  bool     `json:"apto"`
}

type ResumenUsuario struct {
	Usuario       model.ID      `json:"usuarioId"`
	NombreUsuario string        `json:"nombreUsuario"`
	Documento     string        `json:"documento"`
	Minas         []ResumenMina `json:"minas"`
}

type ResumenEstablecimiento struct {
	Establecimiento       model.ID                `json:"establecimientoId"`
	NombreEstablecimiento string                  `json:"nombreEstablecimiento"`
	ExamenesRequeridos    []model.ExamenRequerido `json:"examenesRequeridos"`
	UsuariosAptos         int                     `json:"usuariosAptos"`
}

type Totales struct {
	TotalUsuarios         int `json:"totalUsuarios"`
	UsuariosAptos         int `json:"usuariosAptos"`
	TotalEstablecimientos int `json:"totalEstablecimientos"`
}

// ResumenPorUsuario evaluates every usuario against every establecimiento.
// Rows and nested minas come out ordered by id, so equal snapshots and an
// equal reference date always produce the same output.
func (e Evaluador) ResumenPorUsuario(
	usuarios []model.Usuario,
	establecimientos []model.Establecimiento,
	examenes []model.Examen,
	ahora model.Fecha,
) []ResumenUsuario {
	usuarios = ordenadosPorID(usuarios, func(u model.Usuario) model.ID { return u.ID })
	establecimientos = ordenadosPorID(establecimientos, func(est model.Establecimiento) model.ID { return est.ID })

	porUsuario := make(map[model.ID][]model.Examen, len(usuarios))
	for _, examen := range examenes {
		porUsuario[examen.Usuario] = append(porUsuario[examen.Usuario], examen)
	}

	resumen := make([]ResumenUsuario, 0, len(usuarios))
	for _, usuario := range usuarios {
		fila := ResumenUsuario{
			Usuario:       usuario.ID,
			NombreUsuario: usuario.Nombre,
			Documento:     usuario.Documento,
			Minas:         make([]ResumenMina, 0, len(establecimientos)),
		}

		for _, establecimiento := range establecimientos {
			informe := e.Evaluar(usuario, porUsuario[usuario.ID], establecimiento, ahora)
			fila.Minas = append(fila.Minas, ResumenMina{
				Establecimiento:       establecimiento.ID,
				NombreEstablecimiento: establecimiento.Nombre,
				Apto:                  informe.Apto,
			})
		}

		resumen = append(resumen, fila)
	}

	return resumen
}

// ResumenPorEstablecimiento is the inverse view: per establecimiento, its
// required exams and how many usuarios are currently apto there.
func (e Evaluador) ResumenPorEstablecimiento(
	usuarios []model.Usuario,
	establecimientos []model.Establecimiento,
	examenes []model.Examen,
	ahora model.Fecha,
) []ResumenEstablecimiento {
	establecimientos = ordenadosPorID(establecimientos, func(est model.Establecimiento) model.ID { return est.ID })

	porUsuario := make(map[model.ID][]model.Examen, len(usuarios))
	for _, examen := range examenes {
		porUsuario[examen.Usuario] = append(porUsuario[examen.Usuario], examen)
	}

	resumen := make([]ResumenEstablecimiento, 0, len(establecimientos))
	for _, establecimiento := range establecimientos {
		requeridos := establecimiento.ExamenesRequeridos
		if requeridos == nil {
			requeridos = []model.ExamenRequerido{}
		}

		fila := ResumenEstablecimiento{
			Establecimiento:       establecimiento.ID,
			NombreEstablecimiento: establecimiento.Nombre,
			ExamenesRequeridos:    requeridos,
		}

		for _, usuario := range usuarios {
			if e.Evaluar(usuario, porUsuario[usuario.ID], establecimiento, ahora).Apto {
				fila.UsuariosAptos++
			}
		}

		resumen = append(resumen, fila)
	}

	return resumen
}

// CalcularTotales derives the dashboard counters from a per-usuario resumen.
// A usuario counts as apto when fit for at least one establecimiento.
func CalcularTotales(resumen []ResumenUsuario, totalEstablecimientos int) Totales {
	totales := Totales{
		TotalUsuarios:         len(resumen),
		TotalEstablecimientos: totalEstablecimientos,
	}

	for _, fila := range resumen {
		for _, mina := range fila.Minas {
			if mina.Apto {
				totales.UsuariosAptos++
				break
			}
		}
	}

	return totales
}

func ordenadosPorID[T any](items []T, id func(T) model.ID) []T {
	items = slices.Clone(items)
	slices.SortStableFunc(items, func(a, b T) int {
		return int(id(a)) - int(id(b))
	})
	return items
}
