package auth

// Credential is the login projection of the users table.
type Credential struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

func (Credential) TableName() string {
	return "users"
}
