// Package goal owns the mutually dependent target-amount/savings-percentage
// pair and the target-date horizon constraint. Callers go through the
// setters; mutating either field directly breaks the consistency invariant.
package goal

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// HorizonMonths is the furthest a target date may sit from today.
const HorizonMonths = 36

var (
	// ErrOutOfRange means the target date is before today or beyond the
	// rolling horizon. It blocks both the edit and a later save.
	ErrOutOfRange = errors.New("target date out of range")

	// ErrNoTargetDate means a save was attempted without a target date.
	ErrNoTargetDate = errors.New("no target date set")
)

// Signal describes a non-error adjustment a setter made to its input.
type Signal int

const (
	// SignalNone: the input was applied as given.
	SignalNone Signal = iota
	// SignalDisabled: the edit was a no-op because the salary is not set.
	SignalDisabled
	// SignalCapped: the amount exceeded the salary and was capped to it.
	SignalCapped
)

var oneHundred = decimal.NewFromInt(100)

// Engine keeps targetAmount and savingsPercentage consistent under a salary
// constraint. The zero value is unusable; construct with New or FromProfile.
type Engine struct {
	salary decimal.Decimal
	amount decimal.Decimal
	pct    float64
	date   time.Time

	now func() time.Time // test seam
}

// New creates an engine for a salary with no goal set.
func New(salary decimal.Decimal) *Engine {
	return &Engine{salary: salary, now: time.Now}
}

// FromProfile seeds an engine from stored profile fields. The stored pair is
// taken verbatim; consistency is only guaranteed after the first setter call.
func FromProfile(p model.Profile) *Engine {
	e := New(p.Salary)
	e.amount = p.TargetAmount
	e.pct = p.SavingsPercentage
	e.date = p.TargetDate
	return e
}

// SetByAmount stores an absolute target amount and recomputes the savings
// percentage from it. Amounts above the salary cap to the salary and report
// SignalCapped. With no positive salary the call is a no-op reporting
// SignalDisabled.
func (e *Engine) SetByAmount(amount decimal.Decimal) Signal {
	if !e.salary.IsPositive() {
		return SignalDisabled
	}
	sig := SignalNone
	if amount.GreaterThan(e.salary) {
		amount = e.salary
		sig = SignalCapped
	}
	ratio, _ := amount.Div(e.salary).Float64()
	e.amount = amount
	e.pct = math.Round(ratio * 100)
	return sig
}

// SetByPercentage stores a savings percentage verbatim and derives the amount
// at two-decimal currency precision. With no positive salary the call is a
// no-op reporting SignalDisabled.
func (e *Engine) SetByPercentage(pct float64) Signal {
	if !e.salary.IsPositive() {
		return SignalDisabled
	}
	e.pct = pct
	e.amount = e.salary.Mul(decimal.NewFromFloat(pct)).Div(oneHundred).Round(2)
	return SignalNone
}

// SetTargetDate accepts a date within [today, now+HorizonMonths] and returns
// ErrOutOfRange otherwise. Today is compared with time-of-day stripped.
func (e *Engine) SetTargetDate(d time.Time) error {
	if err := e.checkDate(d); err != nil {
		return err
	}
	e.date = d
	return nil
}

// Validate re-runs the date checks for a commit. The interactive check can be
// bypassed by seeding state programmatically, so callers must validate again
// before persisting. A save additionally requires a date to be set at all.
func (e *Engine) Validate() error {
	if e.date.IsZero() {
		return ErrNoTargetDate
	}
	return e.checkDate(e.date)
}

func (e *Engine) checkDate(d time.Time) error {
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, d.Location())
	if d.Before(today) {
		return ErrOutOfRange
	}
	if d.After(now.AddDate(0, HorizonMonths, 0)) {
		return ErrOutOfRange
	}
	return nil
}

// TargetAmount returns the current amount side of the pair.
func (e *Engine) TargetAmount() decimal.Decimal { return e.amount }

// SavingsPercentage returns the current percentage side of the pair.
func (e *Engine) SavingsPercentage() float64 { return e.pct }

// TargetDate returns the current target date (zero if unset).
func (e *Engine) TargetDate() time.Time { return e.date }
