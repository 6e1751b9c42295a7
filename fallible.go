package fallible

import (
	"strings"

	"github.com/application-research/fallible/result"
	"github.com/application-research/fallible/resultlog"
	logging "github.com/ipfs/go-log/v2"
)

// fallible.go - the division and signup-validation operations, written as
// chains of Results

var log = logging.Logger("fallible")

// Failure messages. They are the Err payloads of the operations in this
// package.
const (
	ErrDivisionByZero = "Division by zero"
	ErrNegativeAge    = "Age cannot be negative"
	ErrAgeTooLow      = "Age is below the minimum"
	ErrAgeUnrealistic = "Age is unrealistic"
	ErrInvalidEmail   = "Invalid email format"
)

// Divide returns a / b, or an Err when b is zero.
func Divide(a, b float64) result.Result[float64, string] {
	if b == 0 {
		return result.Err[float64](ErrDivisionByZero)
	}
	return result.Ok[string](a / b)
}

type Config struct {
	MinAge int
	MaxAge int
}

func DefaultConfig() Config {
	return Config{
		MinAge: 0,
		MaxAge: 150,
	}
}

// Registration is a signup that passed every validation step
type Registration struct {
	Age   int
	Email string
}

type Validator struct {
	cfg Config
}

func NewValidator(opts ...Option) *Validator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.MinAge < 0 {
		log.Warnf("Minimum age %d is negative, using 0", cfg.MinAge)
		cfg.MinAge = 0
	}
	if cfg.MaxAge < cfg.MinAge {
		log.Warnf("Maximum age %d is below minimum age %d, using %d", cfg.MaxAge, cfg.MinAge, cfg.MinAge)
		cfg.MaxAge = cfg.MinAge
	}

	return &Validator{cfg: cfg}
}

func (v *Validator) Config() Config {
	return v.cfg
}

func (v *Validator) ValidateAge(age int) result.Result[int, string] {
	switch {
	case age < 0:
		return result.Err[int](ErrNegativeAge)
	case age < v.cfg.MinAge:
		return result.Err[int](ErrAgeTooLow)
	case age > v.cfg.MaxAge:
		return result.Err[int](ErrAgeUnrealistic)
	}
	return result.Ok[string](age)
}

// ValidateEmail does a structural check only: exactly one '@', a non-empty
// local part, and a dotted domain with no empty labels. It does not look up
// the domain.
func (v *Validator) ValidateEmail(email string) result.Result[string, string] {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || strings.Contains(domain, "@") ||
		strings.ContainsAny(email, " \t\r\n") {
		return result.Err[string](ErrInvalidEmail)
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return result.Err[string](ErrInvalidEmail)
	}
	for _, label := range labels {
		if label == "" {
			return result.Err[string](ErrInvalidEmail)
		}
	}

	return result.Ok[string](email)
}

// Register checks the age first and the email second. If the age is invalid,
// the email is never checked.
func (v *Validator) Register(age int, email string) result.Result[Registration, string] {
	return result.AndThen(v.ValidateAge(age), func(age int) result.Result[Registration, string] {
		return result.Map(v.ValidateEmail(email), func(email string) Registration {
			return Registration{Age: age, Email: email}
		})
	}).
		Inspect(resultlog.Debug[Registration](log, "registration accepted")).
		InspectErr(resultlog.Warn[string](log, "registration rejected"))
}
