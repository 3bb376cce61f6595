package cli

import (
	"context"

	"github.com/dmitrijs2005/capitalchronicles/internal/finance"
)

var calcPrompts = [...]string{"Age:", "Job? (yes/no):", "Monthly Income ($):", "Necessities ($):"}

// Calculate asks for age, job, income and necessities and prints the
// resulting budget. Children also get a pocket-money estimate.
func (a *App) Calculate(ctx context.Context) error {
	var answers [len(calcPrompts)]string
	for i, p := range calcPrompts {
		v, err := getSimpleText(a.reader, p, a.out)
		if err != nil {
			return err
		}
		answers[i] = v
	}

	in, err := finance.ParseInput(answers[0], answers[1], answers[2], answers[3])
	if err != nil {
		return a.fail(ctx, "calculate", err)
	}
	summary, err := finance.Evaluate(in)
	if err != nil {
		return a.fail(ctx, "calculate", err)
	}

	a.println(summary.Report())
	if summary.Status == finance.StatusChild {
		if spend, err := finance.ChildAllowance(in.Income); err == nil {
			a.println("Suggested spending from allowance: " + finance.Dollars(spend))
		}
	}
	return nil
}
