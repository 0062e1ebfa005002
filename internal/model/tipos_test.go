package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTipoExamen(t *testing.T) {
	for _, tipo := range TiposExamen() {
		parsed, err := ParseTipoExamen(string(tipo))
		require.NoError(t, err)
		require.Equal(t, tipo, parsed)
	}

	_, err := ParseTipoExamen("EXAMEN_DE_VISTA")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseTipoExamen("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseTipoExamen("examen_medico_general")
	require.ErrorIs(t, err, ErrInvalid, "matching is case sensitive")
}

func TestTipoExamenUnmarshalJSON(t *testing.T) {
	var tipo TipoExamen
	require.NoError(t, json.Unmarshal([]byte(`"EXAMEN_RADIOLOGICO"`), &tipo))
	require.Equal(t, ExamenRadiologico, tipo)

	err := json.Unmarshal([]byte(`"EXAMEN_DESCONOCIDO"`), &tipo)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestTipoExamenScan(t *testing.T) {
	var tipo TipoExamen
	require.NoError(t, tipo.Scan("EXAMEN_TOXICOLOGICO"))
	require.Equal(t, ExamenToxicologico, tipo)

	require.Error(t, tipo.Scan("TOXICOLOGICO"))
	require.Error(t, tipo.Scan(42))
}
