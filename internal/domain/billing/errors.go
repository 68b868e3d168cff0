package billing

import "github.com/bottleops/backend/internal/domain/shared"

// Billing error values surfaced to the HTTP boundary as user-visible
// messages; none are fatal.
var (
	// ErrInvalidPercentage is returned when a discount or tax percentage
	// falls outside [0, 100]
	ErrInvalidPercentage = shared.NewDomainError("INVALID_PERCENTAGE", "Discount and tax percentages must be between 0 and 100")

	// ErrInvalidQuantity is returned for a negative bottle quantity
	ErrInvalidQuantity = shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")

	// ErrInvalidPrice is returned for a negative unit price
	ErrInvalidPrice = shared.NewDomainError("INVALID_PRICE", "Price per bottle cannot be negative")

	// ErrNothingToBill is returned when the automatic sweep finds no
	// unbilled activity, or a custom selection has no pending bottles
	ErrNothingToBill = shared.NewDomainError("NOTHING_TO_BILL", "No new transactions to bill for this client")

	// ErrAlreadyBilled is returned when a custom selection overlaps an
	// existing custom bill
	ErrAlreadyBilled = shared.NewDomainError("ALREADY_BILLED", "Some selected transactions are already covered by a custom bill")

	// ErrEmptySelection is returned when a custom bill is requested with
	// no transactions selected
	ErrEmptySelection = shared.NewDomainError("EMPTY_SELECTION", "Select at least one transaction to bill")

	// ErrBillAlreadyPaid is returned when deleting or re-paying a paid
	// bill; paid bills are immutable
	ErrBillAlreadyPaid = shared.NewDomainError("BILL_ALREADY_PAID", "Bill is already paid")
)
