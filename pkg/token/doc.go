// Package token generates unguessable session tokens and derives their
// storage identifiers.
//
// A token is a fixed-length alphanumeric string drawn from a CSPRNG. The raw
// token travels only inside the client's cookie; everything persisted
// server-side uses Hash(token), so a leaked session table never exposes a
// usable credential.
//
//	raw, err := token.Generate()
//	id := token.Hash(raw) // session row primary key
package token
