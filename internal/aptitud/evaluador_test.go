package aptitud

import (
	"testing"
	"time"

	"github.com/minaworks/aptitud-tracker/internal/model"
	"github.com/stretchr/testify/suite"
)

type EvaluadorSuite struct {
	suite.Suite
	evaluador Evaluador
	usuario   model.Usuario
}

func (s *EvaluadorSuite) SetupTest() {
	s.evaluador = NewEvaluador(30)
	s.usuario = model.Usuario{ID: 1, Nombre: "Juan Pérez", Documento: "12345678"}
}

func TestEvaluadorSuite(t *testing.T) {
	suite.Run(t, new(EvaluadorSuite))
}

func (s *EvaluadorSuite) requiere(tipos ...model.TipoExamen) model.Establecimiento {
	establecimiento := model.Establecimiento{ID: 10, Nombre: "Mina Norte"}
	for i, tipo := range tipos {
		establecimiento.ExamenesRequeridos = append(establecimiento.ExamenesRequeridos, model.ExamenRequerido{
			ID:              model.ID(i + 1),
			Establecimiento: establecimiento.ID,
			Tipo:            tipo,
		})
	}
	return establecimiento
}

func (s *EvaluadorSuite) TestSinExamenesRequeridos() {
	// An establecimiento that requires nothing accepts everyone.
	informe := s.evaluador.Evaluar(s.usuario, nil, s.requiere(), model.NewFecha(2024, time.June, 1))

	s.True(informe.Apto)
	s.Empty(informe.Examenes)
	s.Equal("Juan Pérez", informe.NombreUsuario)
	s.Equal("Mina Norte", informe.NombreEstablecimiento)
}

func (s *EvaluadorSuite) TestSinHistorial() {
	informe := s.evaluador.Evaluar(
		s.usuario,
		nil,
		s.requiere(model.ExamenMedicoGeneral, model.ExamenAudiometrico),
		model.NewFecha(2024, time.June, 1),
	)

	s.False(informe.Apto)
	s.Len(informe.Examenes, 2)
	for _, examen := range informe.Examenes {
		s.False(examen.Presente)
		s.Nil(examen.Estado)
	}
}

func (s *EvaluadorSuite) TestExamenVigente() {
	examenes := []model.Examen{{
		ID:             1,
		Usuario:        s.usuario.ID,
		Tipo:           model.ExamenMedicoGeneral,
		FechaEmision:   model.NewFecha(2024, time.January, 1),
		FechaCaducidad: model.NewFecha(2025, time.January, 1),
	}}

	informe := s.evaluador.Evaluar(s.usuario, examenes, s.requiere(model.ExamenMedicoGeneral), model.NewFecha(2024, time.June, 1))

	s.True(informe.Apto)
	s.Require().Len(informe.Examenes, 1)
	s.True(informe.Examenes[0].Presente)
	s.Require().NotNil(informe.Examenes[0].Estado)
	s.Equal(model.EstadoVigente, *informe.Examenes[0].Estado)
}

func (s *EvaluadorSuite) TestExamenVencidoEnFechaCaducidad() {
	examenes := []model.Examen{{
		ID:             1,
		Usuario:        s.usuario.ID,
		Tipo:           model.ExamenMedicoGeneral,
		FechaEmision:   model.NewFecha(2024, time.January, 1),
		FechaCaducidad: model.NewFecha(2025, time.January, 1),
	}}

	informe := s.evaluador.Evaluar(s.usuario, examenes, s.requiere(model.ExamenMedicoGeneral), model.NewFecha(2025, time.January, 1))

	s.False(informe.Apto)
	s.Require().Len(informe.Examenes, 1)
	s.True(informe.Examenes[0].Presente)
	s.Require().NotNil(informe.Examenes[0].Estado)
	s.Equal(model.EstadoVencido, *informe.Examenes[0].Estado)
}

func (s *EvaluadorSuite) TestPorVencerSigueSiendoApto() {
	// Inside the 30-day window the exam has not expired, so the verdict
	// stays positive while the estado warns about the upcoming expiry.
	examenes := []model.Examen{{
		ID:             1,
		Usuario:        s.usuario.ID,
		Tipo:           model.ExamenMedicoGeneral,
		FechaEmision:   model.NewFecha(2024, time.January, 1),
		FechaCaducidad: model.NewFecha(2025, time.January, 1),
	}}

	informe := s.evaluador.Evaluar(s.usuario, examenes, s.requiere(model.ExamenMedicoGeneral), model.NewFecha(2024, time.December, 15))

	s.True(informe.Apto)
	s.Require().Len(informe.Examenes, 1)
	s.Require().NotNil(informe.Examenes[0].Estado)
	s.Equal(model.EstadoPorVencer, *informe.Examenes[0].Estado)
}

func (s *EvaluadorSuite) TestUnVencidoBastaParaNoApto() {
	examenes := []model.Examen{
		{
			ID:             1,
			Usuario:        s.usuario.ID,
			Tipo:           model.ExamenMedicoGeneral,
			FechaEmision:   model.NewFecha(2024, time.January, 1),
			FechaCaducidad: model.NewFecha(2026, time.January, 1),
		},
		{
			ID:             2,
			Usuario:        s.usuario.ID,
			Tipo:           model.ExamenAudiometrico,
			FechaEmision:   model.NewFecha(2022, time.January, 1),
			FechaCaducidad: model.NewFecha(2023, time.January, 1),
		},
	}

	informe := s.evaluador.Evaluar(
		s.usuario,
		examenes,
		s.requiere(model.ExamenMedicoGeneral, model.ExamenAudiometrico),
		model.NewFecha(2024, time.June, 1),
	)

	s.False(informe.Apto)
	s.Require().Len(informe.Examenes, 2)
	s.Equal(model.EstadoVigente, *informe.Examenes[0].Estado)
	s.Equal(model.EstadoVencido, *informe.Examenes[1].Estado)
}

func (s *EvaluadorSuite) TestRenovacionGanaAlVencido() {
	// An expired record plus a fresh renewal of the same type: the
	// renewal decides.
	examenes := []model.Examen{
		{
			ID:             1,
			Usuario:        s.usuario.ID,
			Tipo:           model.ExamenMedicoGeneral,
			FechaEmision:   model.NewFecha(2022, time.January, 1),
			FechaCaducidad: model.NewFecha(2023, time.January, 1),
		},
		{
			ID:             2,
			Usuario:        s.usuario.ID,
			Tipo:           model.ExamenMedicoGeneral,
			FechaEmision:   model.NewFecha(2024, time.January, 1),
			FechaCaducidad: model.NewFecha(2025, time.January, 1),
		},
	}

	informe := s.evaluador.Evaluar(s.usuario, examenes, s.requiere(model.ExamenMedicoGeneral), model.NewFecha(2024, time.June, 1))

	s.True(informe.Apto)
}

func (s *EvaluadorSuite) TestOrdenDeclaracion() {
	informe := s.evaluador.Evaluar(
		s.usuario,
		nil,
		s.requiere(model.ExamenToxicologico, model.ExamenMedicoGeneral, model.ExamenRadiologico),
		model.NewFecha(2024, time.June, 1),
	)

	s.Require().Len(informe.Examenes, 3)
	s.Equal(model.ExamenToxicologico, informe.Examenes[0].Tipo)
	s.Equal(model.ExamenMedicoGeneral, informe.Examenes[1].Tipo)
	s.Equal(model.ExamenRadiologico, informe.Examenes[2].Tipo)
}

func (s *EvaluadorSuite) TestDeterminista() {
	examenes := []model.Examen{{
		ID:             1,
		Usuario:        s.usuario.ID,
		Tipo:           model.ExamenMedicoGeneral,
		FechaEmision:   model.NewFecha(2024, time.January, 1),
		FechaCaducidad: model.NewFecha(2025, time.January, 1),
	}}
	establecimiento := s.requiere(model.ExamenMedicoGeneral)
	ahora := model.NewFecha(2024, time.June, 1)

	primero := s.evaluador.Evaluar(s.usuario, examenes, establecimiento, ahora)
	for i := 0; i < 10; i++ {
		s.Equal(primero, s.evaluador.Evaluar(s.usuario, examenes, establecimiento, ahora))
	}
}
