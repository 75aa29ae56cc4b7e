// Package engine contains the sliding-window scanning kernel. It never
// imports app, writers, cli, or pipeline; keep it domain-only.
package engine
