package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/minaworks/aptitud-tracker/internal/model"
)

type EstablecimientoDAO struct {
	Logger *slog.Logger
	*DB
}

func NewEstablecimientoDAO(logger *slog.Logger, db *DB) *EstablecimientoDAO {
	return &EstablecimientoDAO{
		Logger: logger.With("dao", "establecimiento"),
		DB:     db,
	}
}

// Find returns every establecimiento with its required exams attached.
func (dao *EstablecimientoDAO) Find(ctx context.Context) ([]model.Establecimiento, error) {
	logger := dao.Logger.With("query", "find")

	query, args, err := dao.Builder.
		Select("*").
		From("establecimientos").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return []model.Establecimiento{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	establecimientos := make([]model.Establecimiento, 0)
	if err := dao.SelectContext(ctx, &establecimientos, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Establecimiento{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Establecimiento{}, err
	}

	requeridos, err := dao.findRequeridos(ctx, nil)
	if err != nil {
		return []model.Establecimiento{}, err
	}

	byEstablecimiento := make(map[model.ID][]model.ExamenRequerido, len(establecimientos))
	for _, requerido := range requeridos {
		byEstablecimiento[requerido.Establecimiento] = append(byEstablecimiento[requerido.Establecimiento], requerido)
	}

	for i := range establecimientos {
		establecimientos[i].ExamenesRequeridos = byEstablecimiento[establecimientos[i].ID]
		if establecimientos[i].ExamenesRequeridos == nil {
			establecimientos[i].ExamenesRequeridos = []model.ExamenRequerido{}
		}
	}

	logger.Debug("success query execute", "countEstablecimientos", len(establecimientos))

	return establecimientos, nil
}

func (dao *EstablecimientoDAO) Get(ctx context.Context, id model.ID) (model.Establecimiento, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("establecimientos").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Establecimiento{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var establecimiento model.Establecimiento
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&establecimiento); err != nil {
		if IsNoRows(err) {
			return model.Establecimiento{}, model.NewError("establecimiento", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Establecimiento{}, err
	}

	requeridos, err := dao.findRequeridos(ctx, &id)
	if err != nil {
		return model.Establecimiento{}, err
	}
	establecimiento.ExamenesRequeridos = requeridos

	return establecimiento, nil
}

func (dao *EstablecimientoDAO) findRequeridos(ctx context.Context, establecimiento *model.ID) ([]model.ExamenRequerido, error) {
	builder := dao.Builder.
		Select("*").
		From("examenes_requeridos").
		OrderBy("id ASC")
	if establecimiento != nil {
		builder = builder.Where(squirrel.Eq{"establecimiento_id": *establecimiento})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return []model.ExamenRequerido{}, err
	}

	dao.Logger.Debug("build query", "sql", query, "args", args)

	requeridos := make([]model.ExamenRequerido, 0)
	if err := dao.SelectContext(ctx, &requeridos, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.ExamenRequerido{}, nil
		}

		return []model.ExamenRequerido{}, err
	}

	return requeridos, nil
}

type RequeridoDTO struct {
	Tipo          model.TipoExamen
	Observaciones *string
}

type InsertEstablecimientoDTO struct {
	Nombre             string
	Ubicacion          *string
	Descripcion        *string
	ExamenesRequeridos []RequeridoDTO
}

func (dao *EstablecimientoDAO) Insert(ctx context.Context, dto InsertEstablecimientoDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	var id model.ID
	err := dao.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := dao.Builder.
			Insert("establecimientos").
			Columns("nombre", "ubicacion", "descripcion").
			Values(dto.Nombre, dto.Ubicacion, dto.Descripcion).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}

		logger.Debug("build query", "sql", query, "args", args)

		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return err
		}

		return dao.insertRequeridos(ctx, tx, id, dto.ExamenesRequeridos)
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, model.NewError("examen requerido", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdateEstablecimientoDTO struct {
	Nombre      *string
	Ubicacion   *string
	Descripcion *string

	// When non-nil the whole required set is replaced.
	ExamenesRequeridos []RequeridoDTO
}

func (dao *EstablecimientoDAO) Update(ctx context.Context, id model.ID, dto UpdateEstablecimientoDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 4)
	data["updated_at"] = time.Now()
	if dto.Nombre != nil {
		data["nombre"] = *dto.Nombre
	}
	if dto.Ubicacion != nil {
		data["ubicacion"] = *dto.Ubicacion
	}
	if dto.Descripcion != nil {
		data["descripcion"] = *dto.Descripcion
	}

	err := dao.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := dao.Builder.
			Update("establecimientos").
			SetMap(data).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		logger.Debug("build query", "sql", query, "args", args)

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		if dto.ExamenesRequeridos == nil {
			return nil
		}

		query, args, err = dao.Builder.
			Delete("examenes_requeridos").
			Where(squirrel.Eq{"establecimiento_id": id}).
			ToSql()
		if err != nil {
			return err
		}

		logger.Debug("build query", "sql", query, "args", args)

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		return dao.insertRequeridos(ctx, tx, id, dto.ExamenesRequeridos)
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return model.NewError("examen requerido", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(data))

	return nil
}

func (dao *EstablecimientoDAO) insertRequeridos(ctx context.Context, tx *sqlx.Tx, establecimiento model.ID, requeridos []RequeridoDTO) error {
	if len(requeridos) == 0 {
		return nil
	}

	builder := dao.Builder.
		Insert("examenes_requeridos").
		Columns("establecimiento_id", "tipo_examen", "observaciones")
	for _, requerido := range requeridos {
		builder = builder.Values(establecimiento, requerido.Tipo, requerido.Observaciones)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("build query", "sql", query, "args", args)

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (dao *EstablecimientoDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("establecimientos").
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

func (dao *EstablecimientoDAO) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := dao.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %s)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
