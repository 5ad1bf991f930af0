// Package rental defines the rental table model shared by the analysis
// packages. The table is loaded once from an external source and treated as
// immutable for the remainder of the process.
package rental
