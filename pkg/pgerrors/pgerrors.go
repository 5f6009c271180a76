// Package pgerrors классифицирует ошибки PostgreSQL по SQLSTATE
package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const (
	// CodeUniqueViolation нарушение уникального ограничения
	CodeUniqueViolation pq.ErrorCode = "23505"

	// CodeSerializationFailure конфликт сериализуемой транзакции
	CodeSerializationFailure pq.ErrorCode = "40001"

	// CodeDeadlockDetected взаимная блокировка
	CodeDeadlockDetected pq.ErrorCode = "40P01"
)

// IsUniqueViolation проверяет нарушение уникального ограничения
// Если constraint не пустой, дополнительно сверяется имя ограничения
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != CodeUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// IsSerializationFailure проверяет, что транзакция не смогла сериализоваться
// и может быть повторена
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == CodeSerializationFailure || pqErr.Code == CodeDeadlockDetected
}
