package models

import "time"

// UserSession is the local, unverified login record.
type UserSession struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSession `json:"user"`
}
