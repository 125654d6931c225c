package models

// User represents an account entity returned by the HouseIQ backend after
// authentication. It is immutable from the client's point of view: the whole
// value is replaced on login/register and dropped on logout.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID string `json:"id"`

	// Email is the unique address used during authentication.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, shown in the UI.
	Name string `json:"name"`

	// Role is the authorization role assigned by the backend (e.g. "USER").
	Role string `json:"role"`
}
