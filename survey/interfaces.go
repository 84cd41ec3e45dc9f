package survey

import (
	"fmt"

	"github.com/Wagner-UFRRJ/agrimensura/consts"
)

// Store represents a persistent storage of survey projects
type Store interface {
	Add(*Project) error
	Update(*Project) error
	Get(id ProjectID) (*Project, error)
	FindAll(order consts.SortOrder) ([]*Project, error)
}

// ClosableStore is a Store that can be closed
type ClosableStore interface {
	Store

	Close()
}

type notFoundError ProjectID

func (err notFoundError) Error() string {
	return fmt.Sprintf("No such project: %s", string(err))
}

// NotFound returns the error for a missing project id
func NotFound(id ProjectID) error {
	return notFoundError(id)
}

type alreadyExistsError ProjectID

func (err alreadyExistsError) Error() string {
	return fmt.Sprintf("Project already exists: %s", string(err))
}

// ProjectAlreadyExists returns the error for a duplicate project id
func ProjectAlreadyExists(id ProjectID) error {
	return alreadyExistsError(id)
}
