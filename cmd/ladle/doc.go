// Package main hosts the ladle CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the download cache to the terminal:
// listing and removing cached artifacts, fetching new ones, environment
// status, and configuration scaffolding. It centralizes configuration
// resolution and logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
