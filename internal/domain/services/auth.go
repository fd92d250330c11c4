package services

import "context"

// ListAuthorizer decides whether an owner may act on a list.
//
// Services call the authorizer before writing items into a list. Reads do
// not need it: repositories already scope every read by owner.
type ListAuthorizer interface {
	// CanWriteToList returns *domain.OwnershipViolationError unless ownerID
	// owns listID. A missing list is reported the same way.
	CanWriteToList(ctx context.Context, ownerID string, listID int64) error
}
