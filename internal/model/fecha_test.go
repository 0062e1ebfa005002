package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFecha(t *testing.T) {
	fecha, err := ParseFecha("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, NewFecha(2024, time.June, 1), fecha)

	_, err = ParseFecha("01/06/2024")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseFecha("2024-06-01T12:00:00Z")
	require.ErrorIs(t, err, ErrInvalid, "time-of-day is not accepted")
}

func TestFechaJSONRoundTrip(t *testing.T) {
	fecha := NewFecha(2025, time.January, 1)

	data, err := json.Marshal(fecha)
	require.NoError(t, err)
	require.Equal(t, `"2025-01-01"`, string(data))

	var decoded Fecha
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, fecha, decoded)

	require.Error(t, json.Unmarshal([]byte(`20250101`), &decoded))
}

func TestFechaOfTruncates(t *testing.T) {
	instante := time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC)
	require.Equal(t, NewFecha(2024, time.June, 1), FechaOf(instante))
}

func TestFechaHasta(t *testing.T) {
	desde := NewFecha(2024, time.December, 2)
	hasta := NewFecha(2025, time.January, 1)

	require.Equal(t, 30, desde.Hasta(hasta))
	require.Equal(t, -30, hasta.Hasta(desde))
	require.Zero(t, desde.Hasta(desde))
}

func TestFechaScan(t *testing.T) {
	var fecha Fecha
	require.NoError(t, fecha.Scan(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, NewFecha(2024, time.June, 1), fecha)

	require.NoError(t, fecha.Scan("2024-07-15"))
	require.Equal(t, NewFecha(2024, time.July, 15), fecha)

	require.Error(t, fecha.Scan(12345))
}
