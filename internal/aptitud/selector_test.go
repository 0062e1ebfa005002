package aptitud

import (
	"testing"
	"time"

	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSeleccionarVigente(t *testing.T) {
	t.Run("no records of the type", func(t *testing.T) {
		examenes := []model.Examen{
			{ID: 1, Tipo: model.ExamenAudiometrico, FechaCaducidad: model.NewFecha(2025, time.January, 1)},
		}

		_, ok := SeleccionarVigente(examenes, model.ExamenMedicoGeneral)
		require.False(t, ok)
	})

	t.Run("picks the latest expiry", func(t *testing.T) {
		examenes := []model.Examen{
			{ID: 1, Tipo: model.ExamenMedicoGeneral, FechaCaducidad: model.NewFecha(2026, time.March, 1)},
			{ID: 2, Tipo: model.ExamenMedicoGeneral, FechaCaducidad: model.NewFecha(2025, time.March, 1)},
			{ID: 3, Tipo: model.ExamenAudiometrico, FechaCaducidad: model.NewFecha(2027, time.March, 1)},
		}

		examen, ok := SeleccionarVigente(examenes, model.ExamenMedicoGeneral)
		require.True(t, ok)
		require.Equal(t, model.ID(1), examen.ID)
	})

	t.Run("an already expired but later-expiring record still wins", func(t *testing.T) {
		examenes := []model.Examen{
			{ID: 1, Tipo: model.ExamenOcupacional, FechaCaducidad: model.NewFecha(2023, time.June, 1)},
			{ID: 2, Tipo: model.ExamenOcupacional, FechaCaducidad: model.NewFecha(2022, time.June, 1)},
		}

		examen, ok := SeleccionarVigente(examenes, model.ExamenOcupacional)
		require.True(t, ok)
		require.Equal(t, model.ID(1), examen.ID)
	})

	t.Run("equal expiry broken by latest emision", func(t *testing.T) {
		examenes := []model.Examen{
			{
				ID:             1,
				Tipo:           model.ExamenMedicoGeneral,
				FechaEmision:   model.NewFecha(2024, time.January, 1),
				FechaCaducidad: model.NewFecha(2025, time.January, 1),
			},
			{
				ID:             2,
				Tipo:           model.ExamenMedicoGeneral,
				FechaEmision:   model.NewFecha(2024, time.June, 1),
				FechaCaducidad: model.NewFecha(2025, time.January, 1),
			},
		}

		examen, ok := SeleccionarVigente(examenes, model.ExamenMedicoGeneral)
		require.True(t, ok)
		require.Equal(t, model.ID(2), examen.ID)
	})

	t.Run("equal expiry and emision broken by highest id", func(t *testing.T) {
		examenes := []model.Examen{
			{
				ID:             7,
				Tipo:           model.ExamenMedicoGeneral,
				FechaEmision:   model.NewFecha(2024, time.January, 1),
				FechaCaducidad: model.NewFecha(2025, time.January, 1),
			},
			{
				ID:             3,
				Tipo:           model.ExamenMedicoGeneral,
				FechaEmision:   model.NewFecha(2024, time.January, 1),
				FechaCaducidad: model.NewFecha(2025, time.January, 1),
			},
		}

		examen, _ := SeleccionarVigente(examenes, model.ExamenMedicoGeneral)
		require.Equal(t, model.ID(7), examen.ID)
	})

	t.Run("result does not depend on input order", func(t *testing.T) {
		a := model.Examen{ID: 1, Tipo: model.ExamenMedicoGeneral, FechaCaducidad: model.NewFecha(2025, time.January, 1)}
		b := model.Examen{ID: 2, Tipo: model.ExamenMedicoGeneral, FechaCaducidad: model.NewFecha(2026, time.January, 1)}

		primero, _ := SeleccionarVigente([]model.Examen{a, b}, model.ExamenMedicoGeneral)
		segundo, _ := SeleccionarVigente([]model.Examen{b, a}, model.ExamenMedicoGeneral)
		require.Equal(t, primero, segundo)
	})
}
