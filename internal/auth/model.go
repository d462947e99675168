package auth

// Staff roles. Managers maintain the menu; servers take orders.
const (
	RoleManager = "MANAGER"
	RoleServer  = "SERVER"
)

// Staff is the domain entity.
type Staff struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
