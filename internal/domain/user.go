package domain

// User is a registered account. Username is the identity credential and is unique.
type User struct {
	ID       string
	Name     string
	Username string
	Todos    []Todo
}
