package auth

// Authorize decides whether the authenticated subject may mutate a resource
// recorded as belonging to ownerID. Allowed iff the subject is a real,
// authenticated account (non-zero) and is exactly the owner. There is no
// administrative override.
func Authorize(subjectID, ownerID int64) bool {
	return subjectID != 0 && subjectID == ownerID
}
