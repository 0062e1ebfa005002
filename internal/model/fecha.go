package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const FechaLayout = "2006-01-02"

// Fecha is a calendar date. Emission and expiry of exams carry no
// time-of-day component, and all validity comparisons happen at day
// precision, so the wrapped time is always midnight UTC.
type Fecha struct {
	time.Time
}

func NewFecha(year int, month time.Month, day int) Fecha {
	return Fecha{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func FechaOf(t time.Time) Fecha {
	return NewFecha(t.Year(), t.Month(), t.Day())
}

func FechaHoy() Fecha {
	return FechaOf(time.Now())
}

func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha %q: %w", s, ErrInvalid)
	}
	return FechaOf(t), nil
}

func (f Fecha) String() string {
	return f.Format(FechaLayout)
}

func (f Fecha) Antes(other Fecha) bool {
	return f.Time.Before(other.Time)
}

// Hasta returns the number of whole days from f until other; negative when
// other is in the past.
func (f Fecha) Hasta(other Fecha) int {
	return int(other.Time.Sub(f.Time) / (24 * time.Hour))
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format(FechaLayout) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("fecha %s: %w", string(data), ErrInvalid)
	}

	fecha, err := ParseFecha(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*f = fecha
	return nil
}

func (f Fecha) Value() (driver.Value, error) {
	return f.Time, nil
}

func (f *Fecha) Scan(src any) error {
	switch src := src.(type) {
	case time.Time:
		*f = FechaOf(src.UTC())
		return nil
	case string:
		fecha, err := ParseFecha(src)
		if err != nil {
			return err
		}
		*f = fecha
		return nil
	default:
		return fmt.Errorf("fecha: cannot scan %T", src)
	}
}
