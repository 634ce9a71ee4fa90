package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/recruit/pkg/apperrors"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translate maps driver errors to domain errors. notFound and conflict replace
// the generic kinds when given.
func translate(err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if notFound != nil {
			return notFound
		}
		return apperrors.NotFound("storage", "запись не найдена")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if conflict != nil {
				return conflict
			}
			return apperrors.Wrap(err, apperrors.KindConflict, "storage", "запись уже существует")
		case codeForeignKeyViolation:
			return apperrors.Wrap(err, apperrors.KindNotFound, "storage", "связанная запись не найдена")
		}
	}
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperrors.Storage("storage", err)
}
