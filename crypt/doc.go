// Package crypt seals archives with OpenPGP public-key encryption.
//
// Keys are read from armored or binary keyrings, from disk or over HTTP.
// Only public keys are needed; decryption is out of scope.
package crypt
