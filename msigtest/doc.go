/*
Package msigtest provides mocks and fixtures for testing handlers and
decorators without a full application: a canned Authenticator, simple
Tx and Msg implementations, and counters for generated identities.
*/
package msigtest
