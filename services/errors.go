package services

import "errors"

var (
	// ErrAlreadyAssigned rejects a second assignment of the same staff
	// member to one project.
	ErrAlreadyAssigned = errors.New("staff member is already assigned to this project")

	// ErrStaffNotFound means the staff id could not be resolved at
	// assignment time.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrResourceNotFound means the targeted assignment does not exist on
	// the project.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrTrainingNotFound means the targeted training record does not exist.
	ErrTrainingNotFound = errors.New("training not found")

	// ErrInvalidField rejects a field name outside the updatable set.
	ErrInvalidField = errors.New("invalid field")

	// ErrMissingAPIKey means the AI collaborator has no credential
	// configured; the feature is unavailable until one is provided.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured")

	// ErrEmptyAIResponse means the model answered without usable text.
	ErrEmptyAIResponse = errors.New("received an empty response from the AI")
)
