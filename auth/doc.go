// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and token signing.

# Passwords

Passwords are stored as salted bcrypt hashes:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

# Tokens

Tokens are HS256-signed JWTs with a 1-hour expiry. The payload nests the
identity under a "user" key:

	{"user": {"email": "a@example.com", "role": "table-user"}}

The role claim is embedded at issue time and verified on every protected
request, so authorization decisions never depend on a second store lookup.
A token remains valid for its full lifetime; there is no revocation list.

	token, err := auth.SignToken(auth.Identity{Email: email, Role: role}, secret)
	identity, err := auth.VerifyToken(token, secret)

VerifyToken rejects tokens with a bad signature, a non-HS256 algorithm,
a past expiry, or a missing email claim, always returning ErrInvalidToken.
*/
package auth
