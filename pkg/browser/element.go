package browser

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Element is a located DOM element.
type Element struct {
	el      *rod.Element
	session *Session
	by      By
}

// Click left-clicks the element once.
func (e *Element) Click() error {
	if err := e.el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click %s: %w", e.by, err)
	}
	return nil
}

// ClickAndWait clicks the element and waits for the navigation it triggers
// to finish loading. A navigation that does not load within the session
// timeout is an error.
func (e *Element) ClickAndWait() error {
	p := e.session.page.Timeout(e.session.timeout)
	defer p.CancelTimeout()

	wait := p.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := e.Click(); err != nil {
		return err
	}
	wait()
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("navigation after clicking %s did not load: %w", e.by, err)
	}
	return nil
}

// SendKeys types text into the element.
func (e *Element) SendKeys(text string) error {
	if err := e.el.Input(text); err != nil {
		return fmt.Errorf("failed to type into %s: %w", e.by, err)
	}
	return nil
}

// Text returns the rendered text of the element.
func (e *Element) Text() (string, error) {
	text, err := e.el.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", e.by, err)
	}
	return text, nil
}

// Visible reports whether the element is displayed.
func (e *Element) Visible() (bool, error) {
	ok, err := e.el.Visible()
	if err != nil {
		return false, fmt.Errorf("failed to check visibility of %s: %w", e.by, err)
	}
	return ok, nil
}
