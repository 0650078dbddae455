package user

type RegisterUserRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"date_of_birth"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role"`
}

type UserResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at,omitempty"`
}
