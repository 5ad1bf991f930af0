// Package analysis implements the delay-impact calculator: given the rental
// table and a candidate minimum-buffer threshold, it quantifies how many
// bookings the buffer would block against how many handover conflicts it
// would prevent. All functions are pure and safe for concurrent use.
package analysis
