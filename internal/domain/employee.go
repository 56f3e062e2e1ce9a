package domain

// EmployeeRole gates what a portal user can see.
type EmployeeRole string

const (
	RoleTeller  EmployeeRole = "TELLER"
	RoleAdvisor EmployeeRole = "ADVISOR"
	RoleManager EmployeeRole = "MANAGER"
)

// Employee is the mock login identity used by the portal.
type Employee struct {
	ID         string       `json:"id"`
	Username   string       `json:"username"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Role       EmployeeRole `json:"role"`
	Department string       `json:"department"`
}
