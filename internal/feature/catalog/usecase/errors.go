// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

// ErrEmptyQuery is returned when a search is requested without a query term.
var ErrEmptyQuery = errors.New("search query must not be blank")
