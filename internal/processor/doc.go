// Package processor contains the logic behind the phonikud command. It
// loads the dictionary, builds phonemization options and the fallback
// transcriber from configuration, and runs single texts, batch files and
// history operations.
package processor
