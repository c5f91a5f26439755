// Package dispute contains the Dispute aggregate and its Status. Disputes
// are raised by drivers or goods owners, optionally against a load, and are
// arbitrated by administrators.
package dispute
