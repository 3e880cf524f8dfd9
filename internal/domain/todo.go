package domain

import "time"

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin и от хранилища.
type Todo struct {
	ID       string
	Title    string
	Done     bool
	Deadline time.Time

	CreatedAt time.Time
}
