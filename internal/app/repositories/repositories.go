package repositories

import (
	"courseadvisor/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	TeacherRepository *TeacherRepository
	CourseCatalog     *CourseCatalog
}

// NewRepositories initializes all repositories
func NewRepositories(store *db.Store, catalogPath string) *Repositories {
	return &Repositories{
		TeacherRepository: NewTeacherRepository(store),
		CourseCatalog:     NewCourseCatalog(catalogPath),
	}
}
