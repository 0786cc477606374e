// Package view holds the pure computations that turn fetched collections into
// what the screens display: items grouped by header with a "see more"
// cutoff, reminders split into upcoming and expired with day counts, and
// case-insensitive filtering of items and documents.
//
// Nothing in this package performs I/O or keeps state; every function
// returns fresh slices and never mutates its input.
package view
