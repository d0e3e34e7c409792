package auth

// Roles observed in stored user records. Anything else gets no implicit
// privileges.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal is the authenticated identity for one request, derived from a
// verified token and never persisted.
type Principal struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// CanListUsers allows listing the user collection. Admin only.
func (p Principal) CanListUsers() bool { return p.IsAdmin() }

// CanViewUser allows reading a single user record: admins see everyone,
// everyone sees themselves. The ownership check is a literal string match
// on the identifier, never prefix or case-folded.
func (p Principal) CanViewUser(id string) bool {
	if p.IsAdmin() {
		return true
	}
	return id != "" && id == p.Subject
}
