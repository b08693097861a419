package collection

import (
	"sort"
	"sync"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Result is the outcome of one named installer run
type Result struct {
	Name   string `yaml:"name"`
	AmiID  string `yaml:"ami_id,omitempty"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Status != StatusOK
}

func Succeeded(name string, amiID string) Result {
	return Result{Name: name, AmiID: amiID, Status: StatusOK}
}

func Failed(name string, err error) Result {
	return Result{Name: name, Status: StatusError, Error: err.Error()}
}

// Results is safe for concurrent Add from many workers. Adding a result for a
// name that is already present replaces it.
type Results struct {
	mutex   sync.Mutex
	results map[string]Result
}

func (r *Results) Add(result Result) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.results == nil {
		r.results = map[string]Result{}
	}
	r.results[result.Name] = result
}

func (r *Results) Get(name string) (Result, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	result, ok := r.results[name]
	return result, ok
}

// GetAll returns every result ordered by name
func (r *Results) GetAll() []Result {
	r.mutex.Lock()
	all := make([]Result, 0, len(r.results))
	for _, result := range r.results {
		all = append(all, result)
	}
	r.mutex.Unlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func (r *Results) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.results)
}

func (r *Results) Failures() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	failed := 0
	for _, result := range r.results {
		if result.Failed() {
			failed++
		}
	}
	return failed
}
