package aptitud

import (
	"testing"
	"time"

	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/stretchr/testify/require"
)

func resumenFixture() ([]model.Usuario, []model.Establecimiento, []model.Examen, model.Fecha) {
	usuarios := []model.Usuario{
		{ID: 1, Nombre: "Ana Quispe", Documento: "11111111"},
		{ID: 2, Nombre: "Luis Mamani", Documento: "22222222"},
	}

	establecimientos := []model.Establecimiento{
		{
			ID:     1,
			Nombre: "Mina Norte",
			ExamenesRequeridos: []model.ExamenRequerido{
				{ID: 1, Establecimiento: 1, Tipo: model.ExamenMedicoGeneral},
			},
		},
		{
			// No requirements, so everyone qualifies here.
			ID:                 2,
			Nombre:             "Mina Sur",
			ExamenesRequeridos: []model.ExamenRequerido{},
		},
	}

	examenes := []model.Examen{
		{
			ID:             1,
			Usuario:        1,
			Tipo:           model.ExamenMedicoGeneral,
			FechaEmision:   model.NewFecha(2024, time.January, 1),
			FechaCaducidad: model.NewFecha(2025, time.January, 1),
		},
	}

	return usuarios, establecimientos, examenes, model.NewFecha(2024, time.June, 1)
}

func TestResumenPorUsuario(t *testing.T) {
	evaluador := NewEvaluador(30)
	usuarios, establecimientos, examenes, ahora := resumenFixture()

	resumen := evaluador.ResumenPorUsuario(usuarios, establecimientos, examenes, ahora)

	require.Len(t, resumen, 2)

	require.Equal(t, model.ID(1), resumen[0].Usuario)
	require.Equal(t, "11111111", resumen[0].Documento)
	require.Len(t, resumen[0].Minas, 2)
	require.True(t, resumen[0].Minas[0].Apto)
	require.True(t, resumen[0].Minas[1].Apto)

	require.Equal(t, model.ID(2), resumen[1].Usuario)
	require.False(t, resumen[1].Minas[0].Apto, "no exam record for the required type")
	require.True(t, resumen[1].Minas[1].Apto, "no requirements at Mina Sur")
}

func TestResumenPorUsuarioOrdenEstable(t *testing.T) {
	evaluador := NewEvaluador(30)
	usuarios, establecimientos, examenes, ahora := resumenFixture()

	esperado := evaluador.ResumenPorUsuario(usuarios, establecimientos, examenes, ahora)

	// Shuffled snapshots must yield the same rows in the same order.
	invertidosUsuarios := []model.Usuario{usuarios[1], usuarios[0]}
	invertidosEstablecimientos := []model.Establecimiento{establecimientos[1], establecimientos[0]}

	require.Equal(t, esperado, evaluador.ResumenPorUsuario(invertidosUsuarios, invertidosEstablecimientos, examenes, ahora))
}

func TestResumenPorEstablecimiento(t *testing.T) {
	evaluador := NewEvaluador(30)
	usuarios, establecimientos, examenes, ahora := resumenFixture()

	resumen := evaluador.ResumenPorEstablecimiento(usuarios, establecimientos, examenes, ahora)

	require.Len(t, resumen, 2)

	require.Equal(t, model.ID(1), resumen[0].Establecimiento)
	require.Len(t, resumen[0].ExamenesRequeridos, 1)
	require.Equal(t, 1, resumen[0].UsuariosAptos)

	require.Equal(t, model.ID(2), resumen[1].Establecimiento)
	require.Empty(t, resumen[1].ExamenesRequeridos)
	require.Equal(t, 2, resumen[1].UsuariosAptos)
}

func TestCalcularTotales(t *testing.T) {
	evaluador := NewEvaluador(30)
	usuarios, establecimientos, examenes, ahora := resumenFixture()

	resumen := evaluador.ResumenPorUsuario(usuarios, establecimientos, examenes, ahora)
	totales := CalcularTotales(resumen, len(establecimientos))

	require.Equal(t, 2, totales.TotalUsuarios)
	require.Equal(t, 2, totales.UsuariosAptos)
	require.Equal(t, 2, totales.TotalEstablecimientos)
}

func TestCalcularTotalesSinEstablecimientos(t *testing.T) {
	evaluador := NewEvaluador(30)
	usuarios := []model.Usuario{{ID: 1, Nombre: "Ana Quispe", Documento: "11111111"}}

	resumen := evaluador.ResumenPorUsuario(usuarios, nil, nil, model.NewFecha(2024, time.June, 1))
	totales := CalcularTotales(resumen, 0)

	require.Equal(t, 1, totales.TotalUsuarios)
	require.Zero(t, totales.UsuariosAptos)
	require.Zero(t, totales.TotalEstablecimientos)
}
