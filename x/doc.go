/*
Package x contains the extensions that build on the kernel interfaces.
It also contains helper logic shared between extensions, such as the
Authenticator abstraction that decouples handlers from how a signer
identity was established.

Extensions are wired into an application by calling their
RegisterRoutes function with a Router and the Authenticator (or
chain of Authenticators) the application uses.
*/
package x
