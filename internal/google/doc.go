// Package google provides OAuth2 authentication and token management for Google APIs.
//
// Tokens are stored per account as files under the user cache directory
// (google-<account>.token), so one server can act on several Google accounts.
// The TokenProvider interface allows other token sources to be plugged in.
package google
