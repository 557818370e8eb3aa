package domain

import "errors"

// ErrNotFound is returned when an id-keyed operation matches no row.
var ErrNotFound = errors.New("project not found")

// TestProject is a row in the "TestProjects" table. The JSON casing mirrors
// the quoted column names the table was created with.
type TestProject struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}
