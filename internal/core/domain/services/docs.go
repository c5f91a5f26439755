// Package services provides domain services that coordinate business rules
// across multiple aggregates in the marketplace.
//
// The package includes:
//   - BidSelector: picks the best candidate among a load's bids when the
//     goods owner asks the system to choose for them
//
// Domain services hold logic that spans aggregates and therefore fits
// neither the Load nor the Bid aggregate alone.
package services
