package user

import "crypto/subtle"

// Credential is the stored password of a user. The legacy system keeps and
// returns it verbatim; fencing it behind its own type keeps a future move to
// hashing or output redaction localized to this file. Nothing outside this
// type inspects the credential content.
type Credential string

// Matches compares the supplied plaintext against the stored credential in
// constant time.
func (c Credential) Matches(plain string) bool {
	return subtle.ConstantTimeCompare([]byte(c), []byte(plain)) == 1
}

// User mirrors the stored record. The JSON keys, `_id` included, match the
// legacy wire shape and are returned unchanged from storage.
type User struct {
	ID       string     `json:"_id"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Role     string     `json:"role"`
	Password Credential `json:"password"`
}
