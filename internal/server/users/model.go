package users

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	PassHash  []byte
	Phone     string
	Address   string
	CreatedAt time.Time
}
