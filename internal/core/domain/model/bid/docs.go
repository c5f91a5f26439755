// Package bid contains the Bid aggregate and its Status state machine.
// A bid is a driver's priced offer to carry a load. The owner's hire moves
// one bid into the two-party handshake (awaiting_driver_response) and parks
// the rivals as not_hired_by_owner; the hired driver then accepts or declines.
package bid
