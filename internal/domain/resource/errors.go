package resource

import "errors"

var (
	// ErrResourceNotFound indicates the resource was not found
	ErrResourceNotFound = errors.New("resource not found")

	// ErrResourceSlugExists indicates a resource with the slug already
	// exists in the project
	ErrResourceSlugExists = errors.New("resource slug already exists in project")

	// ErrEntityNotFound indicates the source entity was not found
	ErrEntityNotFound = errors.New("source entity not found")

	// ErrEntityExists indicates an entity with the same string hash and
	// context already exists in the resource
	ErrEntityExists = errors.New("source entity already exists in resource")
)
