package models

// User is the registered student profile. A single User (or none) is the
// process-wide session state owned by the session actor.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	DisplayName  string   `json:"displayName"`
	University   string   `json:"university"`
	Major        string   `json:"major"`
	Year         int      `json:"year"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Subjects     []string `json:"subjects"`
}

// Clone returns an independent copy so callers never share the actor's state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Subjects = append([]string(nil), u.Subjects...)
	return &cp
}
