package pool

import "fmt"

// SystemRepositoryName names the repository that holds installed objects.
const SystemRepositoryName = "@System"

// Repository is an origin of objects. Repositories with a higher Priority
// are preferred.
type Repository struct {
	name     string
	priority int
	order    int
}

// Name returns the repository name.
func (r *Repository) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Priority returns the repository priority.
func (r *Repository) Priority() int {
	if r == nil {
		return 0
	}
	return r.priority
}

// Order returns the insertion order of the repository within its pool.
func (r *Repository) Order() int {
	if r == nil {
		return -1
	}
	return r.order
}

// IsSystem reports whether r is the system repository.
func (r *Repository) IsSystem() bool {
	return r != nil && r.name == SystemRepositoryName
}

func (r *Repository) String() string {
	if r == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s(%d)", r.name, r.priority)
}
