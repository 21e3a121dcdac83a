package project

import "errors"

var (
	// ErrProjectNotFound indicates the project was not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectSlugExists indicates a project with the slug already exists
	ErrProjectSlugExists = errors.New("project slug already exists")

	// ErrTeamNotFound indicates the team was not found
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists indicates a team already exists for the language
	ErrTeamExists = errors.New("team already exists for this language")
)
