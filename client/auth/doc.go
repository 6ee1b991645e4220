// Package auth holds the credential model shared by the transport-level
// authentication negotiator.
//
// Credentials can be supplied inline or loaded from a scy secret resource,
// so passwords never have to live in plain configuration files.
package auth
