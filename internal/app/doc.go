// Package app wires application dependencies for the CLI.
//
// It resolves Config from files, dotenv and the environment, builds the
// content client, the fallback resolver and the logger, and exposes one
// controller per screen through App.
package app
