package tui

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver. The default speaks to the
// terminal through survey.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithPageSize caps how many choices show at once in select prompts.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithMaxPasses overrides the bound on prompt/validate rounds before the
// session gives up, protecting against custom rules that can never pass.
func WithMaxPasses(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxPasses = n
		}
	}
}
