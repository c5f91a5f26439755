// Package load contains the Load aggregate and its Status state machine.
// A load is a shipment job posted by a goods owner; drivers bid on it, the
// owner provisionally hires one driver, and the hired driver either accepts
// (the load becomes assigned) or declines (the load returns to pending and
// can be rehired).
package load
