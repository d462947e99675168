package nav

import (
	"errors"
	"sync"
)

// Screen is the single active view. There is no history stack; each
// screen has one fixed predecessor and back always returns there.
type Screen string

const (
	ScreenMenuList   Screen = "MenuList"
	ScreenReview     Screen = "Review"
	ScreenPayment    Screen = "Payment"
	ScreenStatistics Screen = "Statistics"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Controller holds the active screen. Transitions are explicit and
// unguarded; any screen may request any other.
type Controller struct {
	mu           sync.Mutex
	current      Screen
	leavePayment func()
}

func NewController() *Controller {
	return &Controller{current: ScreenMenuList}
}

// OnLeavePayment registers a hook that runs whenever navigation
// moves off the Payment screen. The payment flow uses this to cancel
// a pending confirmation. Register before serving requests.
func (c *Controller) OnLeavePayment(fn func()) {
	c.leavePayment = fn
}

func (c *Controller) Current() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Navigate moves to the named screen
func (c *Controller) Navigate(to Screen) error {
	switch to {
	case ScreenMenuList, ScreenReview, ScreenPayment, ScreenStatistics:
	default:
		return ErrUnknownScreen
	}

	c.set(to)
	return nil
}

// ViewStatistics handles MenuList -> Statistics
func (c *Controller) ViewStatistics() { c.set(ScreenStatistics) }

// BackToMenu handles Statistics -> MenuList and Review -> MenuList
// ("back" and "add more" land on the same screen)
func (c *Controller) BackToMenu() { c.set(ScreenMenuList) }

// ReviewOrder handles MenuList -> Review
func (c *Controller) ReviewOrder() { c.set(ScreenReview) }

// ProceedToPayment handles Review -> Payment
func (c *Controller) ProceedToPayment() { c.set(ScreenPayment) }

// BackToReview handles Payment -> Review
func (c *Controller) BackToReview() { c.set(ScreenReview) }

// OrderCompleted handles Payment -> MenuList after a confirmed order
func (c *Controller) OrderCompleted() { c.set(ScreenMenuList) }

func (c *Controller) set(to Screen) {
	c.mu.Lock()
	from := c.current
	c.current = to
	hook := c.leavePayment
	c.mu.Unlock()

	if from == ScreenPayment && to != ScreenPayment && hook != nil {
		hook()
	}
}
