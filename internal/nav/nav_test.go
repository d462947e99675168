package nav

import "testing"

func TestController_StartsOnMenuList(t *testing.T) {
	c := NewController()

	if c.Current() != ScreenMenuList {
		t.Fatalf("expected initial screen MenuList, got %s", c.Current())
	}
}

func TestController_TransitionTable(t *testing.T) {
	c := NewController()

	steps := []struct {
		move func()
		want Screen
	}{
		{c.ViewStatistics, ScreenStatistics},
		{c.BackToMenu, ScreenMenuList},
		{c.ReviewOrder, ScreenReview},
		{c.BackToMenu, ScreenMenuList},
		{c.ReviewOrder, ScreenReview},
		{c.ProceedToPayment, ScreenPayment},
		{c.BackToReview, ScreenReview},
		{c.ProceedToPayment, ScreenPayment},
		{c.OrderCompleted, ScreenMenuList},
	}

	for i, step := range steps {
		step.move()
		if c.Current() != step.want {
			t.Fatalf("step %d: expected %s, got %s", i, step.want, c.Current())
		}
	}
}

func TestController_NavigateRejectsUnknownScreen(t *testing.T) {
	c := NewController()

	if err := c.Navigate("Checkout"); err != ErrUnknownScreen {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
	if c.Current() != ScreenMenuList {
		t.Fatal("failed navigation changed the screen")
	}

	if err := c.Navigate(ScreenReview); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Current() != ScreenReview {
		t.Fatalf("expected Review, got %s", c.Current())
	}
}

func TestController_LeavePaymentHook(t *testing.T) {
	c := NewController()

	calls := 0
	c.OnLeavePayment(func() { calls++ })

	c.ReviewOrder()
	c.ProceedToPayment()
	if calls != 0 {
		t.Fatal("hook fired before leaving payment")
	}

	c.BackToReview()
	if calls != 1 {
		t.Fatalf("expected 1 hook call after leaving payment, got %d", calls)
	}

	// moving between non-payment screens never fires the hook
	c.BackToMenu()
	c.ViewStatistics()
	if calls != 1 {
		t.Fatalf("hook fired on non-payment transition, calls=%d", calls)
	}
}
