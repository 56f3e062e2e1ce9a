// Package loancalc computes amortization schedules for annuity loans.
package loancalc

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Installment is one row of an amortization schedule.
type Installment struct {
	Number    int     `json:"number"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// Result summarises a loan simulation.
type Result struct {
	Principal      float64       `json:"principal"`
	AnnualRatePct  float64       `json:"annualRatePct"`
	TermMonths     int           `json:"termMonths"`
	MonthlyPayment float64       `json:"monthlyPayment"`
	TotalAmount    float64       `json:"totalAmount"`
	TotalInterest  float64       `json:"totalInterest"`
	Schedule       []Installment `json:"schedule"`
}

// Calculate produces the annuity payment and full schedule using the standard
// amortization formula P·r·(1+r)^n / ((1+r)^n − 1), with all money amounts
// rounded to two decimals. The final installment absorbs rounding drift so the
// balance lands exactly on zero.
func Calculate(principal, annualRatePct float64, termMonths int) (Result, error) {
	if principal <= 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return Result{}, errors.New("principal must be a positive number")
	}
	if annualRatePct < 0 || math.IsNaN(annualRatePct) || math.IsInf(annualRatePct, 0) {
		return Result{}, errors.New("annual rate must not be negative")
	}
	if termMonths <= 0 {
		return Result{}, errors.New("term must be at least one month")
	}

	p := decimal.NewFromFloat(principal)
	n := int32(termMonths)

	var payment decimal.Decimal
	monthlyRate := decimal.NewFromFloat(annualRatePct).
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(12))

	if monthlyRate.IsZero() {
		payment = p.Div(decimal.NewFromInt32(n)).Round(2)
	} else {
		factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt32(n))
		payment = p.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1))).Round(2)
	}

	schedule := make([]Installment, 0, termMonths)
	balance := p
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero

	for i := 1; i <= termMonths; i++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)
		rowPayment := payment

		if i == termMonths || principalPart.GreaterThan(balance) {
			// Close out exactly at zero.
			principalPart = balance
			rowPayment = principalPart.Add(interest)
		}

		balance = balance.Sub(principalPart)
		totalInterest = totalInterest.Add(interest)
		totalPaid = totalPaid.Add(rowPayment)

		schedule = append(schedule, Installment{
			Number:    i,
			Payment:   rowPayment.InexactFloat64(),
			Principal: principalPart.InexactFloat64(),
			Interest:  interest.InexactFloat64(),
			Balance:   balance.InexactFloat64(),
		})

		if balance.IsZero() {
			break
		}
	}

	return Result{
		Principal:      principal,
		AnnualRatePct:  annualRatePct,
		TermMonths:     termMonths,
		MonthlyPayment: payment.InexactFloat64(),
		TotalAmount:    totalPaid.Round(2).InexactFloat64(),
		TotalInterest:  totalInterest.Round(2).InexactFloat64(),
		Schedule:       schedule,
	}, nil
}
