// Package fixtures produces the static in-memory dataset backing the portal.
// Every function returns freshly constructed values on each call, so callers
// get logically equal but referentially distinct data; identifier stability
// comes from the hard-coded ids, not from any persistence.
package fixtures

import (
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Customers returns the seed customer profiles. Every customer carries at
// least one account.
func Customers() []domain.Customer {
	return []domain.Customer{
		{
			ID:          "cust_001",
			FirstName:   "Anna",
			LastName:    "Kowalska",
			NationalID:  "85010112345",
			DateOfBirth: date(1985, time.January, 1),
			Address: domain.Address{
				Street:     "ul. Marszałkowska 12/4",
				City:       "Warszawa",
				PostalCode: "00-590",
				Country:    "PL",
			},
			Contact: domain.Contact{
				Email: "anna.kowalska@example.com",
				Phone: "+48 601 234 567",
			},
			Segment:     domain.SegmentPremium,
			RiskProfile: domain.RiskLow,
			Status:      domain.CustomerActive,
			JoinedAt:    date(2015, time.March, 18),
			Accounts: []domain.Account{
				{
					ID:            "acc_001",
					AccountNumber: "10200031000001",
					IBAN:          "PL61102000310000010200031001",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountChecking,
					Balance:       15420.50,
					Currency:      "PLN",
					Active:        true,
				},
				{
					ID:            "acc_002",
					AccountNumber: "10200031000002",
					IBAN:          "PL61102000310000010200031002",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountSavings,
					Balance:       52000.00,
					Currency:      "PLN",
					Active:        true,
				},
			},
			Notes: []domain.CustomerNote{
				{
					ID:         "note_001",
					EmployeeID: "emp_002",
					Text:       "Interested in mortgage refinancing, follow up in Q4.",
					CreatedAt:  date(2024, time.September, 2),
				},
			},
		},
		{
			ID:          "cust_002",
			FirstName:   "Piotr",
			LastName:    "Nowak",
			NationalID:  "78052298761",
			DateOfBirth: date(1978, time.May, 22),
			Address: domain.Address{
				Street:     "ul. Długa 8",
				City:       "Kraków",
				PostalCode: "31-146",
				Country:    "PL",
			},
			Contact: domain.Contact{
				Email: "piotr.nowak@example.com",
				Phone: "+48 602 345 678",
			},
			Segment:     domain.SegmentRetail,
			RiskProfile: domain.RiskMedium,
			Status:      domain.CustomerActive,
			JoinedAt:    date(2018, time.July, 5),
			Accounts: []domain.Account{
				{
					ID:            "acc_003",
					AccountNumber: "10200031000003",
					IBAN:          "PL61102000310000010200031003",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountChecking,
					// Overdraft seeded on purpose; balances are unconstrained.
					Balance:  -230.75,
					Currency: "PLN",
					Active:   true,
				},
			},
		},
		{
			ID:          "cust_003",
			FirstName:   "Maria",
			LastName:    "Wiśniewska",
			NationalID:  "92111467890",
			DateOfBirth: date(1992, time.November, 14),
			Address: domain.Address{
				Street:     "ul. Piotrkowska 104",
				City:       "Łódź",
				PostalCode: "90-926",
				Country:    "PL",
			},
			Contact: domain.Contact{
				Email: "maria.wisniewska@example.com",
				Phone: "+48 603 456 789",
			},
			Segment:     domain.SegmentRetail,
			RiskProfile: domain.RiskLow,
			Status:      domain.CustomerActive,
			JoinedAt:    date(2020, time.January, 21),
			Accounts: []domain.Account{
				{
					ID:            "acc_004",
					AccountNumber: "10200031000004",
					IBAN:          "PL61102000310000010200031004",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountChecking,
					Balance:       8730.12,
					Currency:      "PLN",
					Active:        true,
				},
				{
					ID:            "acc_005",
					AccountNumber: "10200031000005",
					IBAN:          "PL61102000310000010200031005",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountCurrency,
					Balance:       1200.00,
					Currency:      "EUR",
					Active:        true,
				},
			},
		},
		{
			ID:          "cust_004",
			FirstName:   "Tomasz",
			LastName:    "Zieliński",
			NationalID:  "65080876543",
			DateOfBirth: date(1965, time.August, 8),
			Address: domain.Address{
				Street:     "ul. Świdnicka 40",
				City:       "Wrocław",
				PostalCode: "50-024",
				Country:    "PL",
			},
			Contact: domain.Contact{
				Email: "tomasz.zielinski@zielinski-trans.pl",
				Phone: "+48 604 567 890",
			},
			Segment:     domain.SegmentBusiness,
			RiskProfile: domain.RiskHigh,
			Status:      domain.CustomerActive,
			JoinedAt:    date(2012, time.October, 30),
			Accounts: []domain.Account{
				{
					ID:            "acc_006",
					AccountNumber: "10200031000006",
					IBAN:          "PL61102000310000010200031006",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountChecking,
					Balance:       248900.00,
					Currency:      "PLN",
					Active:        true,
				},
			},
			Notes: []domain.CustomerNote{
				{
					ID:         "note_002",
					EmployeeID: "emp_003",
					Text:       "Large cash deposits flagged for enhanced due diligence.",
					CreatedAt:  date(2024, time.June, 11),
				},
			},
		},
		{
			ID:          "cust_005",
			FirstName:   "Ewa",
			LastName:    "Lewandowska",
			NationalID:  "00241598765",
			DateOfBirth: date(2000, time.April, 15),
			Address: domain.Address{
				Street:     "ul. Monte Cassino 5",
				City:       "Sopot",
				PostalCode: "81-759",
				Country:    "PL",
			},
			Contact: domain.Contact{
				Email: "ewa.lewandowska@example.com",
				Phone: "+48 605 678 901",
			},
			Segment:     domain.SegmentRetail,
			RiskProfile: domain.RiskMedium,
			Status:      domain.CustomerInactive,
			JoinedAt:    date(2022, time.May, 2),
			Accounts: []domain.Account{
				{
					ID:            "acc_007",
					AccountNumber: "10200031000007",
					IBAN:          "PL61102000310000010200031007",
					BIC:           "BPKOPLPW",
					Type:          domain.AccountSavings,
					Balance:       310.45,
					Currency:      "PLN",
					Active:        false,
				},
			},
		},
	}
}

// AccountByID scans the seed customers for an account id.
func AccountByID(id string) (domain.Account, bool) {
	for _, c := range Customers() {
		if acc, ok := c.AccountByID(id); ok {
			return acc, true
		}
	}
	return domain.Account{}, false
}
