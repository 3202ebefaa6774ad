/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import "errors"

var (
	ErrNameRequired      = errors.New("name required")
	ErrNameNotRecognized = errors.New("name not recognized")
	ErrNotAssigned       = errors.New("name missing from computed assignments")
	ErrInvalidRoster     = errors.New("invalid roster")
	ErrInvalidCatalog    = errors.New("invalid case catalog")
)
