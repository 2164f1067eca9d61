// Package browser drives a Chrome session through Rod (Chrome DevTools
// Protocol) for UI scenarios.
//
// Every scenario owns a fresh Session: open it, navigate, locate elements,
// assert, and close it on every exit path. WithSession does the open/close
// bracketing for callers that do not have a testing.T to hang cleanup on.
//
//	err := browser.WithSession(browser.DefaultConfig(), func(s *browser.Session) error {
//	    if err := s.Navigate(baseURL); err != nil {
//	        return err
//	    }
//	    title, err := s.Title()
//	    ...
//	})
package browser
