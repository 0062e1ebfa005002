package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TipoExamen is the closed set of medical exam types. Unknown values are
// rejected wherever external data enters the system.
type TipoExamen string

const (
	ExamenMedicoGeneral TipoExamen = "EXAMEN_MEDICO_GENERAL"
	ExamenAudiometrico  TipoExamen = "EXAMEN_AUDIOMETRICO"
	ExamenOcupacional   TipoExamen = "EXAMEN_OCUPACIONAL"
	ExamenPsicologico   TipoExamen = "EXAMEN_PSICOLOGICO"
	ExamenToxicologico  TipoExamen = "EXAMEN_TOXICOLOGICO"
	ExamenEspiracion    TipoExamen = "EXAMEN_ESPIRACION"
	ExamenRadiologico   TipoExamen = "EXAMEN_RADIOLOGICO"
)

var tiposExamen = [...]TipoExamen{
	ExamenMedicoGeneral,
	ExamenAudiometrico,
	ExamenOcupacional,
	ExamenPsicologico,
	ExamenToxicologico,
	ExamenEspiracion,
	ExamenRadiologico,
}

func TiposExamen() []TipoExamen {
	return tiposExamen[:]
}

func ParseTipoExamen(s string) (TipoExamen, error) {
	for _, tipo := range tiposExamen {
		if s == string(tipo) {
			return tipo, nil
		}
	}
	return "", fmt.Errorf("tipo examen %q: %w", s, ErrInvalid)
}

func (t TipoExamen) Valid() bool {
	_, err := ParseTipoExamen(string(t))
	return err == nil
}

func (t TipoExamen) String() string {
	return string(t)
}

func (t *TipoExamen) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	tipo, err := ParseTipoExamen(s)
	if err != nil {
		return err
	}

	*t = tipo
	return nil
}

func (t TipoExamen) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("tipo examen %q: %w", string(t), ErrInvalid)
	}
	return string(t), nil
}

func (t *TipoExamen) Scan(src any) error {
	var s string
	switch src := src.(type) {
	case string:
		s = src
	case []byte:
		s = string(src)
	default:
		return fmt.Errorf("tipo examen: cannot scan %T", src)
	}

	tipo, err := ParseTipoExamen(s)
	if err != nil {
		return err
	}

	*t = tipo
	return nil
}

// EstadoExamen is the computed validity state of a single exam record
// relative to a reference date.
type EstadoExamen string

const (
	EstadoVigente   EstadoExamen = "VIGENTE"
	EstadoPorVencer EstadoExamen = "POR_VENCER"
	EstadoVencido   EstadoExamen = "VENCIDO"
)

func (e EstadoExamen) String() string {
	return string(e)
}
