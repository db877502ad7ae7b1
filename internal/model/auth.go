package model

import "github.com/golang-jwt/jwt/v5"

// ServiceClaims authenticate calls from the bot front-end to this service.
type ServiceClaims struct {
	jwt.RegisteredClaims

	// Discord user id of the member the front-end is acting for.
	UserID string `json:"user_id"`
}
