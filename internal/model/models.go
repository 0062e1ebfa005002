package model

import "time"

type ID = uint

type Usuario struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Nombre    string  `json:"nombre" db:"nombre"`
	Documento string  `json:"documento" db:"documento"`
	Email     *string `json:"email,omitempty" db:"email"`
}

type Examen struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Usuario ID         `json:"usuarioId" db:"usuario_id"`
	Tipo    TipoExamen `json:"tipoExamen" db:"tipo_examen"`

	FechaEmision   Fecha `json:"fechaEmision" db:"fecha_emision"`
	FechaCaducidad Fecha `json:"fechaCaducidad" db:"fecha_caducidad"`

	Observaciones *string `json:"observaciones,omitempty" db:"observaciones"`
}

type Establecimiento struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Nombre      string  `json:"nombre" db:"nombre"`
	Ubicacion   *string `json:"ubicacion,omitempty" db:"ubicacion"`
	Descripcion *string `json:"descripcion,omitempty" db:"descripcion"`

	// Loaded separately from examenes_requeridos, ordered by row id.
	ExamenesRequeridos []ExamenRequerido `json:"examenesRequeridos" db:"-"`
}

type ExamenRequerido struct {
	ID              ID         `json:"-" db:"id"`
	Establecimiento ID         `json:"-" db:"establecimiento_id"`
	Tipo            TipoExamen `json:"tipoExamen" db:"tipo_examen"`
	Observaciones   *string    `json:"observaciones,omitempty" db:"observaciones"`
}
