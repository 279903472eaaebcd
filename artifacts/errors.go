// Package artifacts loads the versioned model artifacts and shares them
// with request handlers through an atomically swapped snapshot.
package artifacts

import "fmt"

// LoadError reports a failed artifact load: missing file, malformed
// content or a schema version the binary does not understand. A reload
// that produces a LoadError leaves the previous snapshot serving.
type LoadError struct {
	Stage string // which artifact: dictionary, gazetteer, abbreviations, corpus index
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s artifact %q: %v", e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(stage, path string, err error) *LoadError {
	return &LoadError{Stage: stage, Path: path, Err: err}
}
