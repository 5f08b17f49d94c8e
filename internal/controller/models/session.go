package models

import "time"

type Session struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
	StartedAt time.Time `json:"startedAt"`
	TimeLeft  string    `json:"timeLeft"`
}

type SessionToken struct {
	SessionId string `json:"sessionId"`
	Value     string `json:"value"`
}
