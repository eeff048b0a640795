// Package cli implements the stationrank command-line interface.
//
// The single data command is rank: it loads the railway line list and the
// station coordinate table, builds and filters the directed station graph,
// computes the PageRank-style importance scores, and renders the
// map-overlaid figure. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every pipeline stage can report
// progress.
//
// # Example
//
//	import "github.com/stationrank/stationrank/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
