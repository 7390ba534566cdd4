package repository

import "errors"

var (
	ErrFailedToGet       = errors.New("failed to get")
	ErrFailedToList      = errors.New("failed to list")
	ErrFailedToUpdate    = errors.New("failed to update")
	ErrFailedToInsert    = errors.New("failed to insert")
	ErrFailedToSubscribe = errors.New("failed to subscribe")
)
