package dto

// CreateUserRequest is the JSON body for POST /users.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// UserResponse is the registered user as returned to the client.
type UserResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Todos    []TodoResponse `json:"todos"`
}
