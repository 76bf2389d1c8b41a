package navigation

import (
	"sync"

	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/types/business"
)

// Router tracks the dashboard location the API has pushed the merchant to
type Router struct {
	mu      sync.RWMutex
	current business.NavigationState
	history []business.NavigationState
}

// NewRouter creates a router positioned at the dashboard root
func NewRouter() *Router {
	return &Router{
		current: business.NavigationState{
			Path:  constants.DashboardRootPath,
			Query: map[string]string{},
		},
	}
}

func (r *Router) CurrentPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Path
}

func (r *Router) CurrentQuery() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyQuery(r.current.Query)
}

// Navigate pushes a new location. The query replaces the current one.
func (r *Router) Navigate(path string, query map[string]string) {
	if path == "" {
		path = constants.DashboardRootPath
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, r.current)
	r.current = business.NavigationState{Path: path, Query: copyQuery(query)}
}

// State returns the current location
func (r *Router) State() business.NavigationState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return business.NavigationState{Path: r.current.Path, Query: copyQuery(r.current.Query)}
}

// History returns previously visited locations, oldest first
func (r *Router) History() []business.NavigationState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]business.NavigationState, len(r.history))
	copy(out, r.history)
	return out
}

func copyQuery(query map[string]string) map[string]string {
	out := make(map[string]string, len(query))
	for k, v := range query {
		out[k] = v
	}
	return out
}
