package repository

import (
	"github.com/deppfellow/threads-backend/internal/server"
)

// Repositories is the container handed to the service layer.
type Repositories struct {
	Community *CommunityRepository
	Thread    *ThreadRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB builds the repositories on an arbitrary DBTX.
func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Community: NewCommunityRepository(db),
		Thread:    NewThreadRepository(db),
	}
}
