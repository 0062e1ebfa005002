package aptitud

import (
	"testing"
	"time"

	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClasificar(t *testing.T) {
	evaluador := NewEvaluador(30)

	examen := model.Examen{
		Tipo:           model.ExamenMedicoGeneral,
		FechaEmision:   model.NewFecha(2024, time.January, 1),
		FechaCaducidad: model.NewFecha(2025, time.January, 1),
	}

	tests := []struct {
		name  string
		ahora model.Fecha
		want  model.EstadoExamen
	}{
		{
			name:  "well before expiry",
			ahora: model.NewFecha(2024, time.June, 1),
			want:  model.EstadoVigente,
		},
		{
			name:  "one day outside the warning window",
			ahora: model.NewFecha(2024, time.December, 1),
			want:  model.EstadoVigente,
		},
		{
			name:  "exactly 30 days before expiry",
			ahora: model.NewFecha(2024, time.December, 2),
			want:  model.EstadoPorVencer,
		},
		{
			name:  "inside the warning window",
			ahora: model.NewFecha(2024, time.December, 15),
			want:  model.EstadoPorVencer,
		},
		{
			name:  "one day before expiry",
			ahora: model.NewFecha(2024, time.December, 31),
			want:  model.EstadoPorVencer,
		},
		{
			// The expiry date is an exclusive bound of validity.
			name:  "on the expiry date",
			ahora: model.NewFecha(2025, time.January, 1),
			want:  model.EstadoVencido,
		},
		{
			name:  "after expiry",
			ahora: model.NewFecha(2025, time.February, 1),
			want:  model.EstadoVencido,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, evaluador.Clasificar(examen, tt.ahora))
		})
	}
}

func TestClasificarCustomVentana(t *testing.T) {
	examen := model.Examen{
		FechaEmision:   model.NewFecha(2024, time.January, 1),
		FechaCaducidad: model.NewFecha(2024, time.March, 1),
	}
	ahora := model.NewFecha(2024, time.February, 20)

	require.Equal(t, model.EstadoVigente, NewEvaluador(7).Clasificar(examen, ahora))
	require.Equal(t, model.EstadoPorVencer, NewEvaluador(10).Clasificar(examen, ahora))
}

func TestNewEvaluadorDefaultVentana(t *testing.T) {
	require.Equal(t, DefaultVentanaDias, NewEvaluador(0).VentanaDias)
	require.Equal(t, DefaultVentanaDias, NewEvaluador(-5).VentanaDias)
	require.Equal(t, 15, NewEvaluador(15).VentanaDias)
}
