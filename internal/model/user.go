package model

// User is the stored credential record used to authenticate login attempts.
// It lives inside the profile settings document; the admin tooling that
// creates it is outside this service.
type User struct {
	Username string `json:"username" bson:"username"`
	Password string `json:"-" bson:"password"` // bcrypt hash, never exposed
}
