// Package cmd implements the command-line interface for the fastcoll
// collections library. It provides a hierarchical command structure with
// tooling around the library's engines and views.
//
// The package is organized into several subpackages:
//
//   - perf: Commands for in-process performance testing of engines and view stacks
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See fastcoll -help for a list of all commands.
package cmd
