package payment

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// The three accepted payment methods, in display order
const (
	MethodCashOnPickup = "Cash on Pickup"
	MethodCard         = "Debit/Credit Card"
	MethodMobileWallet = "Mobile Wallet"
)

func Methods() []string {
	return []string{MethodCashOnPickup, MethodCard, MethodMobileWallet}
}

const DefaultConfirmDelay = 1800 * time.Millisecond

const (
	msgSelectMethod = "Please select a payment method to continue."
	msgConfirmed    = "Thank you! Your order is confirmed. Returning to the menu..."
)

var (
	ErrNoMethodSelected = errors.New("no payment method selected")
	ErrUnknownMethod    = errors.New("unknown payment method")
)

// Flow holds the selected payment method and drives the delayed
// order confirmation. A pending confirmation is cancellable; the
// navigation controller cancels it when the user leaves the payment
// screen before the delay elapses.
type Flow struct {
	mu       sync.Mutex
	delay    time.Duration
	selected string
	message  string
	pending  *time.Timer
}

func NewFlow(delay time.Duration) *Flow {
	if delay <= 0 {
		delay = DefaultConfirmDelay
	}
	return &Flow{delay: delay}
}

// SelectMethod picks one of the three methods; at most one is
// selected at a time
func (f *Flow) SelectMethod(method string) error {
	switch method {
	case MethodCashOnPickup, MethodCard, MethodMobileWallet:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.selected = method
	return nil
}

// Selected returns the chosen method, empty until one is picked
func (f *Flow) Selected() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

// Message returns the current user-visible confirmation text, empty
// when there is nothing to show
func (f *Flow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Confirm checks that a method is selected, shows the confirmation
// message, and schedules onConfirmed to run once after the delay.
// The message is cleared when the timer fires. With no method
// selected the failure is recoverable: the message explains the
// problem and onConfirmed is never scheduled. A second confirm while
// one is pending is ignored.
func (f *Flow) Confirm(onConfirmed func()) error {
	f.mu.Lock()

	if f.selected == "" {
		f.message = msgSelectMethod
		f.mu.Unlock()
		return ErrNoMethodSelected
	}

	if f.pending != nil {
		f.mu.Unlock()
		return nil
	}

	f.message = msgConfirmed
	f.pending = time.AfterFunc(f.delay, func() {
		f.mu.Lock()
		if f.pending == nil {
			// cancelled between firing and acquiring the lock
			f.mu.Unlock()
			return
		}
		f.pending = nil
		f.message = ""
		f.mu.Unlock()

		if onConfirmed != nil {
			onConfirmed()
		}
	})

	f.mu.Unlock()
	return nil
}

// CancelPending stops a scheduled confirmation and clears the
// message. Safe to call when nothing is pending.
func (f *Flow) CancelPending() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending == nil {
		return
	}
	f.pending.Stop()
	f.pending = nil
	f.message = ""
}
