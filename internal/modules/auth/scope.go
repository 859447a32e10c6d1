package auth

// Role is the authorization role carried by an authenticated account.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
)

// Scope is the visibility boundary resolved once per request from the
// authenticated identity and threaded explicitly through every ledger
// and query call. An owner scope is global; an employee scope is pinned
// to the employee's own account and home shop.
type Scope struct {
	role       Role
	employeeID int64
	shopID     int64
}

// OwnerScope grants global visibility. The owner's own user id is kept
// so that self-referential queries (own sales) still resolve.
func OwnerScope(employeeID int64) Scope {
	return Scope{role: RoleOwner, employeeID: employeeID}
}

// EmployeeScope restricts visibility to one employee and their home
// shop. shopID is zero for accounts with no shop assignment.
func EmployeeScope(employeeID, shopID int64) Scope {
	return Scope{role: RoleEmployee, employeeID: employeeID, shopID: shopID}
}

func (s Scope) Owner() bool       { return s.role == RoleOwner }
func (s Scope) EmployeeID() int64 { return s.employeeID }
func (s Scope) ShopID() int64     { return s.shopID }
