package entity

// User is an account known to the site backend.
// Password is opaque to the store; callers hash it before Create.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
