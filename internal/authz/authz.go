package authz

import (
	"github.com/video-social-api/internal/apperrors"
)

// CheckOwnership verifies that the requester owns a resource before a
// mutation proceeds. It is invoked only after the resource's existence has
// been confirmed, so a failure here is always a permission problem and
// never an absence problem.
func CheckOwnership(ownerID, requesterID string) error {
	if ownerID != requesterID {
		return apperrors.PermissionDenied("you don't have permission to modify this resource")
	}
	return nil
}
