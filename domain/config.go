package domain

// SavedConfiguration is a named deal input snapshot a user can reload
// later. Stored JSON-serialized in the cache.
type SavedConfiguration struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Input DealInput `json:"input"`
}
