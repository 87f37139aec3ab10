// Package commands defines the birchwood CLI, a terminal rendition of the
// Birchwood Fishing & Camping app.
//
// Commands
//
//   - home     Welcome screen with the phone number to call
//   - camping  Pitches, facilities and prices
//   - fishing  Species, day tickets and lake rules
//   - contact  Contact details, quick actions and site rules
//   - gallery  Photo catalog with category filter and image viewer
//
// # Implementation
//
// The root command resolves the configuration and builds the dependency
// graph (content client, fallback defaults, logger) before any subcommand
// runs. Each subcommand mounts its screen, optionally re-fetches it with
// --refresh, and prints whatever the screen settled on. A content service
// outage never fails a command: screens show fallback or empty content and
// the cause goes to the diagnostics log on stderr.
package commands
