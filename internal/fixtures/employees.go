package fixtures

import "github.com/ecm-digital/bankingapp-sub000/internal/domain"

// DemoPassword is accepted for every seed employee. The portal has no real
// authentication; this only exists so failed-login paths are reachable.
const DemoPassword = "portal-demo"

// Employees returns the seed employee identities used for mock login.
func Employees() []domain.Employee {
	return []domain.Employee{
		{
			ID:         "emp_001",
			Username:   "jkaczmarek",
			FirstName:  "Joanna",
			LastName:   "Kaczmarek",
			Role:       domain.RoleTeller,
			Department: "Branch Operations",
		},
		{
			ID:         "emp_002",
			Username:   "mwojcik",
			FirstName:  "Marek",
			LastName:   "Wójcik",
			Role:       domain.RoleAdvisor,
			Department: "Retail Advisory",
		},
		{
			ID:         "emp_003",
			Username:   "akaminska",
			FirstName:  "Agnieszka",
			LastName:   "Kamińska",
			Role:       domain.RoleManager,
			Department: "Branch Management",
		},
		{
			ID:         "emp_004",
			Username:   "pszymanski",
			FirstName:  "Paweł",
			LastName:   "Szymański",
			Role:       domain.RoleTeller,
			Department: "Branch Operations",
		},
	}
}
