// Package auth provides the authentication surface of the marketplace:
// bcrypt password hashing, HS256 token issue and verification, login by
// username or email, and the OTP verification stub backed by an injected
// expiring code store.
//
// The package never touches plaintext passwords outside of hashing and
// comparison; the domain layer stores only the resulting hash.
package auth
