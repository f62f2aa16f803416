package booking

import (
	"context"
	"sync/atomic"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
)

// LifecycleState names the stages of one booking submission. Terminal states
// are Rejected, Failed, PartiallyFailed and Completed; everything else is
// transient.
type LifecycleState string

const (
	StateIdle            LifecycleState = "idle"
	StateValidating      LifecycleState = "validating"
	StatePersisting      LifecycleState = "persisting"
	StatePaying          LifecycleState = "paying_for_booking"
	StateConfirming      LifecycleState = "confirming"
	StateNotifying       LifecycleState = "notifying_user"
	StateRejected        LifecycleState = "rejected"
	StateFailed          LifecycleState = "failed"
	StatePartiallyFailed LifecycleState = "partially_failed"
	StateCompleted       LifecycleState = "completed"
)

// SubmitResult reports the terminal state of a submission together with
// whatever the state makes meaningful: the booking id on success, the
// validation list on rejection, the collaborator error otherwise.
type SubmitResult struct {
	State            LifecycleState
	BookingID        int64
	Nights           int
	TotalPrice       float64
	ValidationErrors []ValidationError
	Err              error
}

// Controller drives a booking attempt from validated request to confirmed
// booking. Steps run strictly sequentially; payment failure is a hard stop
// that leaves the booking pending, while notification failure after a
// successful payment never rolls anything back.
type Controller struct {
	bookings   BookingRepository
	properties PropertyReader
	payments   PaymentProcessor
	mailer     ConfirmationMailer
	notifs     NotificationSender
	loggerf    func(format string, args ...interface{})

	inFlight atomic.Bool
}

func NewController(
	bookings BookingRepository,
	properties PropertyReader,
	payments PaymentProcessor,
	mailer ConfirmationMailer,
	notifs NotificationSender,
	loggerf func(format string, args ...interface{}),
) *Controller {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Controller{
		bookings:   bookings,
		properties: properties,
		payments:   payments,
		mailer:     mailer,
		notifs:     notifs,
		loggerf:    loggerf,
	}
}

// Submit runs the full lifecycle. At most one submission may be in flight per
// controller; concurrent calls are rejected outright so a double-click cannot
// create duplicate bookings. Once persisting begins the attempt runs to a
// terminal state.
func (ctl *Controller) Submit(ctx context.Context, req SubmitBookingRequest) SubmitResult {
	if !ctl.inFlight.CompareAndSwap(false, true) {
		return SubmitResult{State: StateRejected, Err: ErrSubmitInFlight}
	}
	defer ctl.inFlight.Store(false)

	// Validating
	property, err := ctl.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return SubmitResult{State: StateFailed, Err: err}
	}

	if verrs := ValidateBookingRequest(req, property); len(verrs) > 0 {
		return SubmitResult{State: StateRejected, ValidationErrors: verrs}
	}

	nights, _ := ComputeNights(req.CheckIn, req.CheckOut)
	total, _ := ComputeTotalPrice(nights, property.PricePerNight)

	// Persisting
	b := &domain.Booking{
		PropertyID:      req.PropertyID,
		TravelerID:      req.TravelerID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalPrice:      total,
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}
	if err := ctl.bookings.Create(ctx, b); err != nil {
		return SubmitResult{State: StateFailed, Err: err}
	}

	// PayingForBooking. Failure leaves the booking pending rather than
	// cancelling it: the inventory hold is legitimate and support can
	// recover it.
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	if _, err := ctl.payments.Charge(ctx, b.ID, total, currency, req.PaymentMethod); err != nil {
		ctl.loggerf("level=error msg=payment failed booking_id=%d err=%v", b.ID, err)
		return SubmitResult{State: StatePartiallyFailed, BookingID: b.ID, Nights: nights, TotalPrice: total, Err: err}
	}

	// Confirming
	if err := ctl.bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed); err != nil {
		ctl.loggerf("level=error msg=confirm update failed after successful payment booking_id=%d err=%v", b.ID, err)
		return SubmitResult{State: StatePartiallyFailed, BookingID: b.ID, Nights: nights, TotalPrice: total, Err: err}
	}

	// NotifyingUser: best-effort, never rolls back the confirmed booking.
	if ctl.mailer != nil {
		if err := ctl.mailer.SendBookingConfirmation(ctx, req.Email, property.Name, req.CheckIn, req.CheckOut, total); err != nil {
			ctl.loggerf("level=warn msg=confirmation email failed booking_id=%d err=%v", b.ID, err)
		}
	}
	if ctl.notifs != nil {
		if err := ctl.notifs.NotifyBookingConfirmed(ctx, req.TravelerID, b.ID, property.Name); err != nil {
			ctl.loggerf("level=warn msg=confirmation notification failed booking_id=%d err=%v", b.ID, err)
		}
	}

	return SubmitResult{State: StateCompleted, BookingID: b.ID, Nights: nights, TotalPrice: total}
}
