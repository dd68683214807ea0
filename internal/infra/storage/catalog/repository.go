package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mfkayan044/securedrive-sub000/pkg/dbmetrics"
	"github.com/mfkayan044/securedrive-sub000/pkg/psqlbuilder"
)

// Repository справочники: локации, типы автомобилей, дополнительные услуги
// Методы разнесены по файлам locations.go, vehicle_types.go, extra_services.go
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// deleteByID удаляет строку таблицы по id, notFound возвращается если строки нет
func (r *Repository) deleteByID(ctx context.Context, op, table string, id int64, notFound error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	return checkAffected(result, op, notFound)
}

func checkAffected(result sql.Result, op string, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
