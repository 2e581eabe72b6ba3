/*
Package context provides utilities wrapping the native go/context package
for catching and handling multiple interrupts.

The main use-case is to attach an interrupt signal handler to the context
handed to the package loader, so a scan stuck resolving modules can be
aborted cleanly from the CLI.

	import "github.com/omgnotthatguy/errtree/pkg/context"

	...

	if err := inspect.Tree(context.Context(), os.Stdout, pattern, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to scan pattern")
	}
 */
package context
