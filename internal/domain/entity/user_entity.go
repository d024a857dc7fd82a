package entity

// User is the aggregate root for the user domain.
// Password holds whatever the credential policy stored: plaintext by default,
// a bcrypt hash when hashing is enabled.
//
// WatchedByUserIDs lists the users who watch this user. The JSON name keeps the
// historical "watcheeUserIds" key so existing snapshots stay readable.
type User struct {
	Email            string          `json:"email"`
	Password         string          `json:"password"`
	Name             string          `json:"name"`
	Image            string          `json:"image,omitempty"`
	WatchedByUserIDs map[string]bool `json:"watcheeUserIds"`
}

// UserView is the public projection of a user returned by GetUser.
type UserView struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Image          string    `json:"image,omitempty"`
	WatcheeUserIDs []int     `json:"watcheeUserIds"`
	Jobs           []JobView `json:"jobs"`
}

// UserSummary is a search hit.
type UserSummary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}
