// Package finance computes the monthly summary shown on the adventure screen:
// age bracket, tax, income after tax and what is left after necessities.
//
// Money is handled as decimal.Decimal so a 15% tax on cents stays exact.
// Tax is applied only when the user has a job; a stipend is not taxed.
package finance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/shopspring/decimal"
)

// Status is the age bracket a user falls into.
type Status string

const (
	StatusChild        Status = "Child"
	StatusStudent      Status = "Student"
	StatusWorkingAdult Status = "Working Adult"
)

const (
	childMaxAge   = 17
	studentMaxAge = 22
)

var (
	// TaxRate is the flat income tax applied to employed users.
	TaxRate = decimal.RequireFromString("0.15")

	// ChildExpenseShare is the part of a child's allowance counted as expenses.
	ChildExpenseShare = decimal.RequireFromString("0.5")
)

// Input holds one evaluation request. Income is the monthly salary when
// HasJob is set and the monthly stipend otherwise.
type Input struct {
	Age         int
	HasJob      bool
	Income      decimal.Decimal
	Necessities decimal.Decimal
}

// Summary is the result of Evaluate. Leftover may be negative.
type Summary struct {
	Status      Status
	Income      decimal.Decimal
	Tax         decimal.Decimal
	NetIncome   decimal.Decimal
	Necessities decimal.Decimal
	Leftover    decimal.Decimal
}

// Classify maps an age to its bracket: under 18 is Child, 18 to 22 inclusive
// is Student, older is Working Adult.
func Classify(age int) (Status, error) {
	switch {
	case age < 0:
		return "", fmt.Errorf("%w: age must not be negative", common.ErrInvalidInput)
	case age <= childMaxAge:
		return StatusChild, nil
	case age <= studentMaxAge:
		return StatusStudent, nil
	default:
		return StatusWorkingAdult, nil
	}
}

// Evaluate computes the summary for in. Negative age or money values are
// rejected with common.ErrInvalidInput.
func Evaluate(in Input) (Summary, error) {
	status, err := Classify(in.Age)
	if err != nil {
		return Summary{}, err
	}
	if in.Income.IsNegative() {
		return Summary{}, fmt.Errorf("%w: income must not be negative", common.ErrInvalidInput)
	}
	if in.Necessities.IsNegative() {
		return Summary{}, fmt.Errorf("%w: necessities must not be negative", common.ErrInvalidInput)
	}

	tax := decimal.Zero
	if in.HasJob {
		tax = in.Income.Mul(TaxRate)
	}
	net := in.Income.Sub(tax)

	return Summary{
		Status:      status,
		Income:      in.Income,
		Tax:         tax,
		NetIncome:   net,
		Necessities: in.Necessities,
		Leftover:    net.Sub(in.Necessities),
	}, nil
}

// ChildAllowance estimates a child's monthly expenses as half the allowance.
func ChildAllowance(allowance decimal.Decimal) (decimal.Decimal, error) {
	if allowance.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: allowance must not be negative", common.ErrInvalidInput)
	}
	return allowance.Mul(ChildExpenseShare), nil
}

// Report renders the summary the way the adventure screen shows it.
func (s Summary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	if s.Tax.IsPositive() {
		fmt.Fprintf(&b, "Taxes: %s\n", Dollars(s.Tax))
	}
	fmt.Fprintf(&b, "Income after tax: %s\n", Dollars(s.NetIncome))
	fmt.Fprintf(&b, "Necessities: %s\n", Dollars(s.Necessities))
	fmt.Fprintf(&b, "Leftover: %s\n", Dollars(s.Leftover))
	return b.String()
}

// Dollars formats d as "$1234.50", with the sign before the dollar mark.
func Dollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// ParseInput converts raw prompt answers into an Input. The job answer
// accepts yes/y/no/n in any case.
func ParseInput(age, job, income, necessities string) (Input, error) {
	var in Input

	a, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return Input{}, fmt.Errorf("%w: age %q is not a whole number", common.ErrInvalidInput, age)
	}
	in.Age = a

	if in.HasJob, err = ParseYesNo(job); err != nil {
		return Input{}, err
	}
	if in.Income, err = ParseAmount(income); err != nil {
		return Input{}, err
	}
	if in.Necessities, err = ParseAmount(necessities); err != nil {
		return Input{}, err
	}
	return in, nil
}

// ParseYesNo reads a yes/no answer.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("%w: answer %q with yes or no", common.ErrInvalidInput, s)
}

// ParseAmount reads a money amount, tolerating a leading "$".
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", common.ErrInvalidInput, s)
	}
	return d, nil
}
