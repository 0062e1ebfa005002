package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/minaworks/aptitud-tracker/internal/model"
)

type ExamenDAO struct {
	Logger *slog.Logger
	*DB
}

func NewExamenDAO(logger *slog.Logger, db *DB) *ExamenDAO {
	return &ExamenDAO{
		Logger: logger.With("dao", "examen"),
		DB:     db,
	}
}

func (dao *ExamenDAO) Find(ctx context.Context) ([]model.Examen, error) {
	logger := dao.Logger.With("query", "find")

	query, args, err := dao.Builder.
		Select("*").
		From("examenes").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return []model.Examen{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	examenes := make([]model.Examen, 0)
	if err := dao.SelectContext(ctx, &examenes, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Examen{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Examen{}, err
	}

	logger.Debug("success query execute", "countExamenes", len(examenes))

	return examenes, nil
}

func (dao *ExamenDAO) FindByUsuario(ctx context.Context, usuario model.ID) ([]model.Examen, error) {
	logger := dao.Logger.With("query", "findByUsuario")

	query, args, err := dao.Builder.
		Select("*").
		From("examenes").
		Where(squirrel.Eq{"usuario_id": usuario}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return []model.Examen{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	examenes := make([]model.Examen, 0)
	if err := dao.SelectContext(ctx, &examenes, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Examen{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Examen{}, err
	}

	logger.Debug("success query execute", "countExamenes", len(examenes))

	return examenes, nil
}

func (dao *ExamenDAO) Get(ctx context.Context, id model.ID) (model.Examen, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("examenes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Examen{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var examen model.Examen
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&examen); err != nil {
		if IsNoRows(err) {
			return model.Examen{}, model.NewError("examen", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Examen{}, err
	}

	return examen, nil
}

type InsertExamenDTO struct {
	Usuario        model.ID
	Tipo           model.TipoExamen
	FechaEmision   model.Fecha
	FechaCaducidad model.Fecha
	Observaciones  *string
}

func (dao *ExamenDAO) Insert(ctx context.Context, dto InsertExamenDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("examenes").
		Columns("usuario_id", "tipo_examen", "fecha_emision", "fecha_caducidad", "observaciones").
		Values(dto.Usuario, dto.Tipo, dto.FechaEmision, dto.FechaCaducidad, dto.Observaciones).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		if IsForeignKeyViolation(err) {
			return 0, model.NewError("usuario", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdateExamenDTO struct {
	Tipo           *model.TipoExamen
	FechaEmision   *model.Fecha
	FechaCaducidad *model.Fecha
	Observaciones  *string
}

func (dao *ExamenDAO) Update(ctx context.Context, id model.ID, dto UpdateExamenDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 5)
	data["updated_at"] = time.Now()
	if dto.Tipo != nil {
		data["tipo_examen"] = *dto.Tipo
	}
	if dto.FechaEmision != nil {
		data["fecha_emision"] = *dto.FechaEmision
	}
	if dto.FechaCaducidad != nil {
		data["fecha_caducidad"] = *dto.FechaCaducidad
	}
	if dto.Observaciones != nil {
		data["observaciones"] = *dto.Observaciones
	}

	query, args, err := dao.Builder.
		Update("examenes").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(data))

	return nil
}

func (dao *ExamenDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("examenes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "deleteId", id)

	return nil
}
