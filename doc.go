/*
Package errtree discovers the error types reachable from a Go package and
displays how they relate to each other as an indented tree rooted at the
built-in error interface.

There are no exports in the root package.

CLI tools part of `cmd/` include:
	- errtree - scan a package pattern and print its error type tree

 */
package errtree
