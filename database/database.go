package database

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
	visitorRepo *VisitorRepo
}

// New initializes a new Database struct with each repository using the shared
// connections. Repositories are constructed once at startup and passed down
// explicitly so tests can substitute fakes behind the consumer interfaces.
func New(db *gorm.DB, rdb *redis.Client) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		visitorRepo: NewVisitorRepo(rdb),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) VisitorRepo() *VisitorRepo {
	return d.visitorRepo
}
