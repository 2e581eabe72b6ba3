/*
Package errtree provides the registry of discovered error types and the
rendering of their subtype relationships as an indented tree.

The registry is built once by a collector (see internal/inspect), then
handed to Render which produces the output lines. Rendering is a pure
function over the registry; nothing here performs IO.

A type embedding more than one error type has multiple parents, making the
structure a DAG rather than a strict tree. By default such a type is placed
under its first declared parent only and marked with a trailing asterisk.
With the all-paths option it is expanded under every parent instead.

 */
package errtree
