package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the database.
// Remote blob store writes are never part of it.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ServiceRepository returns a repository bound to the current transaction.
	ServiceRepository() ServiceRepository

	// ApplicationRepository returns a repository bound to the current transaction.
	ApplicationRepository() ApplicationRepository

	// UserRepository returns a repository bound to the current transaction.
	UserRepository() UserRepository
}
