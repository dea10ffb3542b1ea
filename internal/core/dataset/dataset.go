// Package dataset loads the CSV exports (users, sessions, session texts),
// links them into an object graph and serves indexed lookups over the
// result. It is the single implementation of core.DataSource.
package dataset

import "time"

// Default file names inside the data directory.
const (
	DefaultUserFile        = "user.csv"
	DefaultSessionFile     = "session.csv"
	DefaultSessionTextFile = "session_text.csv"
)

// DefaultRegistrationDays is the trailing window, in days, a user's
// registration must fall into to be retained.
const DefaultRegistrationDays = 30

// Config tunes a Loader.
//
// DataDir:          directory holding the CSV exports.
// RegistrationDays: trailing window (days) for the user registration filter.
// Now:              clock used to anchor the window; nil means time.Now.
type Config struct {
	DataDir          string
	RegistrationDays int
	Now              func() time.Time
}

func (c Config) withDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = "raw_data"
	}
	if c.RegistrationDays <= 0 {
		c.RegistrationDays = DefaultRegistrationDays
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// LoadOptions selects the source files for a LoadAll call. Zero values
// mean the defaults: the standard file names, with linking enabled.
type LoadOptions struct {
	UserFile        string
	SessionFile     string
	SessionTextFile string

	// SkipLink leaves the relationship fields unpopulated.
	SkipLink bool
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.UserFile == "" {
		o.UserFile = DefaultUserFile
	}
	if o.SessionFile == "" {
		o.SessionFile = DefaultSessionFile
	}
	if o.SessionTextFile == "" {
		o.SessionTextFile = DefaultSessionTextFile
	}
	return o
}
