/*
Package x contains some standard extensions

Extensions implement common functionality (authentication helpers,
transaction isolation) and are intended to be combined with the domain
logic under x/custody to construct a running application.

This top-level package contains interfaces needed to combine the
extensions, where they don't fit cleanly in the root package.
*/
package x
