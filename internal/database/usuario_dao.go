package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/minaworks/aptitud-tracker/internal/model"
)

type UsuarioDAO struct {
	Logger *slog.Logger
	*DB
}

func NewUsuarioDAO(logger *slog.Logger, db *DB) *UsuarioDAO {
	return &UsuarioDAO{
		Logger: logger.With("dao", "usuario"),
		DB:     db,
	}
}

func (dao *UsuarioDAO) Find(ctx context.Context) ([]model.Usuario, error) {
	logger := dao.Logger.With("query", "find")

	query, args, err := dao.Builder.
		Select("*").
		From("usuarios").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return []model.Usuario{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	usuarios := make([]model.Usuario, 0)
	if err := dao.SelectContext(ctx, &usuarios, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Usuario{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Usuario{}, err
	}

	logger.Debug("success query execute", "countUsuarios", len(usuarios))

	return usuarios, nil
}

func (dao *UsuarioDAO) Get(ctx context.Context, id model.ID) (model.Usuario, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("usuarios").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Usuario{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var usuario model.Usuario
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&usuario); err != nil {
		if IsNoRows(err) {
			return model.Usuario{}, model.NewError("usuario", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Usuario{}, err
	}

	return usuario, nil
}

type InsertUsuarioDTO struct {
	Nombre    string
	Documento string
	Email     *string
}

func (dao *UsuarioDAO) Insert(ctx context.Context, dto InsertUsuarioDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("usuarios").
		Columns("nombre", "documento", "email").
		Values(dto.Nombre, dto.Documento, dto.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		if IsUniqueViolation(err) {
			return 0, model.NewError("usuario", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdateUsuarioDTO struct {
	Nombre    *string
	Documento *string
	Email     *string
}

func (dao *UsuarioDAO) Update(ctx context.Context, id model.ID, dto UpdateUsuarioDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 4)
	data["updated_at"] = time.Now()
	if dto.Nombre != nil {
		data["nombre"] = *dto.Nombre
	}
	if dto.Documento != nil {
		data["documento"] = *dto.Documento
	}
	if dto.Email != nil {
		data["email"] = *dto.Email
	}

	query, args, err := dao.Builder.
		Update("usuarios").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return model.NewError("usuario", model.ErrExists)
		}

		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(data))

	return nil
}

func (dao *UsuarioDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("usuarios").
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
