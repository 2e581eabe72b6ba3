/*
Package cmd provides all the commands for the errtree binary.

The root command performs the scan itself, taking a single package pattern
and printing the tree to stdout. The list and version subcommands live in
their own files.

there are a few global CLI flags that can be used to configure how errtree
will operate. These are defined by the globally exposed variables

Usage

	errtree -c github.com/spf13/viper
	errtree list ./...

 */
package cmd
