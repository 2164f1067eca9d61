package browser

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Config configures Chrome launch options.
type Config struct {
	Headless     bool          // Run without a window (default: true, UITEST_HEADLESS=false to show it)
	Timeout      time.Duration // Navigation timeout (default: 30s)
	ImplicitWait time.Duration // How long element lookups wait for a match (default: 10s)
	WindowWidth  int           // Default: 1920
	WindowHeight int           // Default: 1080
	Bin          string        // Chrome binary; empty lets Rod find or download one
}

// DefaultConfig returns defaults for UI scenarios.
func DefaultConfig() Config {
	return Config{
		Headless:     os.Getenv("UITEST_HEADLESS") != "false",
		Timeout:      30 * time.Second,
		ImplicitWait: 10 * time.Second,
		WindowWidth:  1920,
		WindowHeight: 1080,
	}
}

// Session is one browser with a single page. It is not safe for concurrent use.
type Session struct {
	browser      *rod.Browser
	page         *rod.Page
	timeout      time.Duration
	implicitWait time.Duration
	closed       bool
}

// Open launches Chrome and opens a blank page.
// Always Close the session (via defer or t.Cleanup) to avoid orphaned Chrome processes.
func Open(cfg Config) (*Session, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu").
		Set("start-maximized").
		Set("window-size", fmt.Sprintf("%d,%d", cfg.WindowWidth, cfg.WindowHeight))
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	b := rod.New().ControlURL(url)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &Session{
		browser:      b,
		page:         page,
		timeout:      cfg.Timeout,
		implicitWait: cfg.ImplicitWait,
	}, nil
}

// Navigate loads url and waits for the load event.
func (s *Session) Navigate(url string) error {
	if s.page == nil {
		return errors.New("no page open")
	}
	p := s.page.Timeout(s.timeout)
	defer p.CancelTimeout()

	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("page %s did not load: %w", url, err)
	}
	return nil
}

// CurrentURL returns the URL of the page.
func (s *Session) CurrentURL() (string, error) {
	info, err := s.info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

// Title returns the document title.
func (s *Session) Title() (string, error) {
	info, err := s.info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

func (s *Session) info() (*proto.TargetTargetInfo, error) {
	if s.page == nil {
		return nil, errors.New("no page open")
	}
	info, err := s.page.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read page info: %w", err)
	}
	return info, nil
}

// FindElement returns the first element matching by, waiting up to the
// implicit wait for it to appear.
func (s *Session) FindElement(by By) (*Element, error) {
	if s.page == nil {
		return nil, errors.New("no page open")
	}
	p := s.page.Timeout(s.implicitWait)

	var (
		el  *rod.Element
		err error
	)
	switch by.kind {
	case kindXPath:
		el, err = p.ElementX(by.value)
	default:
		el, err = p.Element(by.value)
	}
	if err != nil {
		p.CancelTimeout()
		return nil, fmt.Errorf("element %s not found: %w", by, err)
	}

	return &Element{el: el.CancelTimeout(), session: s, by: by}, nil
}

// WaitStable waits until the DOM has not changed for d.
func (s *Session) WaitStable(d time.Duration) error {
	if s.page == nil {
		return errors.New("no page open")
	}
	p := s.page.Timeout(s.timeout)
	defer p.CancelTimeout()
	return p.WaitStable(d)
}

// Page returns the underlying Rod page, or nil if none is open.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Close shuts Chrome down. Calling it more than once is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.browser != nil {
		return s.browser.Close()
	}
	return nil
}

// WithSession opens a session, runs fn, and closes the session on every exit
// path, including a panic in fn.
func WithSession(cfg Config, fn func(*Session) error) error {
	return scoped(func() (*Session, error) { return Open(cfg) }, fn)
}

func scoped(open func() (*Session, error), fn func(*Session) error) (err error) {
	s, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("browser close error: %w", cerr))
		}
	}()
	return fn(s)
}
