package catalog

// CanUpload reports whether another upload is allowed given the current
// document count and the session limit. A limit of zero or below disables
// uploads entirely. The backend remains the final authority; this is a
// client-side admission check only.
func CanUpload(count, limit int) bool {
	return count < limit
}
