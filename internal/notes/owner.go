package notes

import (
	"errors"
	"strconv"
)

// ErrMissingOwner is returned when a request carries no usable owner
// identifier.
var ErrMissingOwner = errors.New("missing user identifier")

type ownerKind int

const (
	ownerInternal ownerKind = iota + 1 // numeric account id
	ownerExternal                      // Google subject id
)

// Owner is the single owner reference a note is scoped to: either an
// internal account id or an external provider id, never both. Queries
// match only the discriminated column, so a null identifier on one side
// can never leak another account's notes.
type Owner struct {
	kind       ownerKind
	internalID int64
	externalID string
}

func InternalOwner(id int64) Owner {
	return Owner{kind: ownerInternal, internalID: id}
}

func ExternalOwner(id string) Owner {
	return Owner{kind: ownerExternal, externalID: id}
}

// OwnerFromQuery resolves the contract's ?user_id=&google_id= pair into
// one owner reference. user_id wins when both are supplied.
func OwnerFromQuery(userID, googleID string) (Owner, error) {
	if userID != "" {
		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			return Owner{}, ErrMissingOwner
		}
		return InternalOwner(id), nil
	}
	if googleID != "" {
		return ExternalOwner(googleID), nil
	}
	return Owner{}, ErrMissingOwner
}

// OwnerFromIDs resolves the JSON body variant, where absent identifiers
// arrive as null.
func OwnerFromIDs(userID *int64, googleID *string) (Owner, error) {
	if userID != nil && *userID != 0 {
		return InternalOwner(*userID), nil
	}
	if googleID != nil && *googleID != "" {
		return ExternalOwner(*googleID), nil
	}
	return Owner{}, ErrMissingOwner
}
