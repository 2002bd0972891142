// Package clientip extracts the client's IP address from HTTP requests,
// preferring proxy-reported headers over the remote socket address.
//
// The result feeds rate-limit key derivation and session metadata, so the
// extraction is deterministic for a given request and validates every
// candidate before trusting it.
package clientip
