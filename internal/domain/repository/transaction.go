package repository

import "context"

// RepositoryFactory creates repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PostRepo() PostRepository
	FileRepo() FileRepository
}

// TransactionManager runs multi-step persistence work in a single database
// transaction. The callback receives a factory whose repositories all share
// that transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
