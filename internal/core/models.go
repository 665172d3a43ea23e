package core

import "time"

type TaskRecord struct {
	ID          uint
	Content     string
	Completed   bool
	DateCreated time.Time
}

type Credentials struct {
	Username string
	Password string
}
