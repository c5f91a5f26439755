package services

import (
	"errors"

	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/load"
)

// ErrNoEligibleBids is returned when none of the provided bids can be hired.
// This occurs when the slice is empty or every bid is already parked,
// declined, or belongs to another load.
var ErrNoEligibleBids = errors.New("no eligible bids")

// BidSelector is a domain service that picks the bid a goods owner should
// hire when they leave the choice to the system.
//
// Selection rules:
//   - Only pending bids on the given load are eligible
//   - The cheapest amount wins
//   - Ties go to the bid placed first
type BidSelector struct{}

// NewBidSelector creates a new BidSelector instance.
func NewBidSelector() BidSelector {
	return BidSelector{}
}

// SelectCheapest returns the cheapest pending bid on the load. Returns
// ErrNoEligibleBids when nothing qualifies.
func (s BidSelector) SelectCheapest(l *load.Load, bids []*bid.Bid) (*bid.Bid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	var best *bid.Bid

	for _, b := range bids {
		if err := b.Validate(); err != nil {
			return nil, err
		}

		if !b.LoadID().IsEqual(l.ID()) || b.Status() != bid.Pending {
			continue
		}

		if best == nil || s.beats(b, best) {
			best = b
		}
	}

	if best == nil {
		return nil, ErrNoEligibleBids
	}

	return best, nil
}

// beats reports whether candidate should replace current as the selection.
func (s BidSelector) beats(candidate, current *bid.Bid) bool {
	if current.Amount().IsGreaterThan(candidate.Amount()) {
		return true
	}
	if candidate.Amount().IsGreaterThan(current.Amount()) {
		return false
	}
	return candidate.CreatedAt().Before(current.CreatedAt())
}
