// Package commands defines the promocast CLI and wires the application
// graph for its subcommands.
//
// Commands
//
//   - play          Present products and announcements for a store
//   - store         Add, list and remove stores
//   - product       Add, list and remove products
//   - announcement  Add, list and remove announcements
//   - duration      Show or change the default slide duration
//
// # Implementation
//
// Every command builds the same fx graph (AppOptions): configuration,
// logger, application state backed by SQLite, the carousel player, the
// renderer hub and the session engine. play adds either the terminal
// presentation or, with --wallpaper, the desktop wallpaper pipeline.
package commands
