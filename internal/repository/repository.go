package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned by Get when no row matches the id.
var ErrNotFound = errors.New("record not found")

// Kind discriminates store-level constraint violations.
type Kind string

const (
	KindUnique      Kind = "unique"
	KindCheck       Kind = "check"
	KindReferential Kind = "referential"
)

// StoreError is a constraint violation surfaced by the database,
// re-classified so that services never inspect driver error types.
type StoreError struct {
	Kind   Kind
	Detail string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store constraint (%s): %s", e.Kind, e.Detail)
}

// AsStoreError unwraps err into a StoreError if it is one.
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Classify maps driver constraint errors to StoreError and leaves
// everything else untouched. Postgres is matched by SQLSTATE; other
// drivers (sqlite in tests) by message content.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &StoreError{Kind: KindUnique, Detail: pgErr.Detail}
		case "23514":
			return &StoreError{Kind: KindCheck, Detail: pgErr.ConstraintName}
		case "23503":
			return &StoreError{Kind: KindReferential, Detail: pgErr.Detail}
		}
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"):
		return &StoreError{Kind: KindUnique, Detail: err.Error()}
	case strings.Contains(msg, "check constraint"):
		return &StoreError{Kind: KindCheck, Detail: err.Error()}
	case strings.Contains(msg, "foreign key constraint"):
		return &StoreError{Kind: KindReferential, Detail: err.Error()}
	}
	return err
}

// Repository is a gorm-backed CRUD store over a single entity kind.
// Every call commits before returning; there is no cross-call transaction.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle for entity-specific queries built on
// top of the generic contract.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T]) Create(entity *T) error {
	return Classify(r.db.Create(entity).Error)
}

func (r *Repository[T]) Get(id int64) (*T, error) {
	var entity T
	err := r.db.First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// List returns entities in insertion order, pageSize rows starting at
// startIndex. pageSize zero yields an empty page.
func (r *Repository[T]) List(pageSize, startIndex int) ([]T, error) {
	entities := make([]T, 0, pageSize)
	err := r.db.Order("id ASC").Limit(pageSize).Offset(startIndex).Find(&entities).Error
	return entities, err
}

func (r *Repository[T]) Update(entity *T) error {
	return Classify(r.db.Save(entity).Error)
}

func (r *Repository[T]) Delete(entity *T) error {
	return Classify(r.db.Delete(entity).Error)
}
