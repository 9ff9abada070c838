package domain

import "errors"

var (
	ErrPlantNotFound   = errors.New("plant traits not found")
	ErrGardenNotFound  = errors.New("garden attributes not found")
	ErrClimateNotFound = errors.New("climate profile not found")
	ErrInvalidTask     = errors.New("task failed schema validation")
	ErrPersistFailed   = errors.New("persist task batch")
)
