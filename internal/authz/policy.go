// Package authz implements the single resource-access policy every handler
// goes through: owner gets full access, public resources allow read to any
// authenticated caller. Roles gate routes, not rows.
package authz

import (
	"errors"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("access to this resource is forbidden")

// Op is the kind of access being requested.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

// Owned is any resource gated by an owner id.
type Owned interface {
	OwnedBy() uuid.UUID
}

// PublicReadable is implemented by resources that may opt into read access
// for non-owners (library tasks with the public flag).
type PublicReadable interface {
	PubliclyReadable() bool
}

// Can decides access for one identity, one resource and one operation.
func Can(id Identity, res Owned, op Op) bool {
	if res.OwnedBy() == id.ID {
		return true
	}
	if op == OpRead {
		if p, ok := res.(PublicReadable); ok && p.PubliclyReadable() {
			return true
		}
	}
	return false
}

// Require is Can with an error result, for use in service call chains.
func Require(id Identity, res Owned, op Op) error {
	if !Can(id, res, op) {
		return ErrForbidden
	}
	return nil
}
