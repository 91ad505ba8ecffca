// Package repository реализует доступ к хранилищу пользователей (PostgreSQL).
// Каждый метод — ровно один SQL-стейтмент (или короткая
// read-then-write последовательность в Update, обёрнутая в транзакцию).
// Бизнес-логики здесь нет.
package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"

	"github.com/dkovalyov/go-user-store/internal/server/models"
	"github.com/dkovalyov/go-user-store/internal/server/service"
	serr "github.com/dkovalyov/go-user-store/internal/shared/errors"
)

// UsersRepository реализует service.UsersRepo поверх database/sql.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository создаёт новый экземпляр UsersRepository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// psql — общий билдер с PostgreSQL-плейсхолдерами ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Create вставляет новую строку пользователя.
//
// id генерируется сервисным слоем и передаётся готовым.
//
// Ошибки:
//   - ErrEmailTaken — нарушение unique constraint по email (код 23505);
//     constraint в базе авторитетен, pre-check в сервисе — только оптимизация
//   - ErrInternal — прочие ошибки базы данных
func (r *UsersRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, age)
		 VALUES ($1,$2,$3,$4)`,
		u.ID, u.Name, u.Email, u.Age,
	)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return serr.ErrEmailTaken
			}
		}
		return serr.ErrInternal
	}

	return nil
}

// GetByID возвращает пользователя по первичному ключу.
//
// Некорректный формат id просто не находит строку — это тоже ErrNotFound.
func (r *UsersRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, age FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Age)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByEmail возвращает пользователя по email (unique-индекс).
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, age FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Age)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// List возвращает страницу пользователей в естественном порядке строк.
//
// limit=0 легально и возвращает пустой список.
// Offset-пагинация не даёт консистентности между конкурентными мутациями.
func (r *UsersRepository) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	query, args, err := psql.
		Select("id", "name", "email", "age").
		From("users").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, serr.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Age); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

// Update применяет частичное обновление внутри одной транзакции:
// читает текущую строку (FOR UPDATE), проверяет занятость нового email
// и выполняет один UPDATE только по переданным полям.
//
// Таймаут/отмена контекста между чтением и записью откатывает транзакцию,
// частичных изменений не остаётся.
//
// Ошибки:
//   - ErrNotFound — строки с таким id нет
//   - ErrEmailTaken — новый email занят другим пользователем
//     (pre-check либо 23505 от constraint при гонке)
//   - ErrInternal — прочие ошибки базы данных
func (r *UsersRepository) Update(ctx context.Context, id string, patch service.UserPatch) (models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	defer tx.Rollback()

	var cur models.User
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, email, age FROM users WHERE id=$1 FOR UPDATE`,
		id,
	).Scan(&cur.ID, &cur.Name, &cur.Email, &cur.Age)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	// email меняется — проверяем, что он не занят кем-то другим
	if patch.Email != nil && *patch.Email != cur.Email {
		var exists int
		err = tx.QueryRowContext(ctx,
			`SELECT 1 FROM users WHERE email=$1 AND id<>$2`,
			*patch.Email, id,
		).Scan(&exists)

		switch {
		case err == nil:
			return models.User{}, serr.ErrEmailTaken
		case errors.Is(err, sql.ErrNoRows):
			// email свободен
		default:
			return models.User{}, serr.ErrInternal
		}
	}

	qb := psql.Update("users")
	changed := false
	if patch.Name != nil {
		qb = qb.Set("name", *patch.Name)
		changed = true
	}
	if patch.Email != nil {
		qb = qb.Set("email", *patch.Email)
		changed = true
	}
	if patch.Age != nil {
		qb = qb.Set("age", *patch.Age)
		changed = true
	}

	// пустой patch — no-op, возвращаем строку как есть
	if !changed {
		if err := tx.Commit(); err != nil {
			return models.User{}, serr.ErrInternal
		}
		return cur, nil
	}

	query, args, err := qb.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, email, age").
		ToSql()
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	var updated models.User
	err = tx.QueryRowContext(ctx, query, args...).
		Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Age)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrEmailTaken
			}
		}
		return models.User{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, serr.ErrInternal
	}

	return updated, nil
}

// Delete удаляет строку пользователя (hard delete).
func (r *UsersRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id=$1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}

	return nil
}

// Ping проверяет доступность базы (для health-check).
func (r *UsersRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return serr.ErrInternal
	}
	return nil
}
