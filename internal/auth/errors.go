package auth

import "errors"

var (
	// ErrMissingCredential means no session cookie was presented.
	ErrMissingCredential = errors.New("auth: missing session cookie")
	// ErrBadSignature covers malformed tokens and signature mismatches alike.
	ErrBadSignature = errors.New("auth: bad token signature")
	// ErrIssuerMismatch means the token was minted under a different issuer.
	ErrIssuerMismatch = errors.New("auth: issuer mismatch")
	// ErrExpired means the token is past its expiry.
	ErrExpired = errors.New("auth: token expired")

	// ErrForbidden is an authorization failure: the caller is authenticated
	// but the policy denies the request.
	ErrForbidden = errors.New("auth: forbidden")
)
