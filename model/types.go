package model

import (
	"sync"
	"time"
)

const (
	ViolationIndexName = "violations"

	ReasonAbuse = "abuse"
)

// Violation is one moderation action taken against a user's message.
type Violation struct {
	Time     time.Time `json:"time" bson:"time"`
	UserID   int64     `json:"user_id" bson:"user_id"`
	Username string    `json:"username" bson:"username"`
	Reason   string    `json:"reason" bson:"reason"`
	Detail   string    `json:"detail" bson:"detail"`
}

type MysqlViolation struct {
	Time     string
	UserID   int64
	Username string
	Reason   string
	Detail   string
}

func (MysqlViolation) TableName() string {
	return ViolationIndexName
}

var ViolationPool = &sync.Pool{
	New: func() any {
		return new(Violation)
	},
}
