package domain

import "errors"

var (
	// ErrSchema indicates the input table has no recognized glucose column.
	ErrSchema = errors.New("no glucose column found")
	// ErrNotTrained indicates a forecast or save was requested before training.
	ErrNotTrained = errors.New("model not trained")
	// ErrModelNotFound indicates no persisted model state exists yet.
	ErrModelNotFound = errors.New("no persisted model found")
	// ErrInsufficientData indicates the series is too short to fit a model.
	ErrInsufficientData = errors.New("not enough readings to train")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)
