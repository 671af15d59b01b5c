// Package session keeps the little state the client owns itself: the
// bearer token for each portal, the customer's selected address and the
// rider's last known location. Everything else lives on the server.
package session

import (
	"fmt"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/golang-jwt/jwt/v5"
)

// Portal identifies which of the four front ends a client acts as. Each
// portal keeps its own token, matching the old per-portal storage keys
// (auth_token, vendorToken, riderToken, adminToken).
type Portal string

const (
	PortalCustomer Portal = "customer"
	PortalVendor   Portal = "vendor"
	PortalRider    Portal = "rider"
	PortalAdmin    Portal = "admin"
)

type Store interface {
	Token(p Portal) string
	SetToken(p Portal, token string) error
	ClearToken(p Portal) error

	SelectedAddressID() uint
	SetSelectedAddressID(id uint) error

	LastRiderLocation() *entity.RiderLocation
	SetLastRiderLocation(loc entity.RiderLocation) error
}

// state is what actually gets persisted.
type state struct {
	Tokens            map[Portal]string     `json:"tokens"`
	SelectedAddressID uint                  `json:"selected_address_id,omitempty"`
	LastRiderLocation *entity.RiderLocation `json:"last_rider_location,omitempty"`
}

func newState() state {
	return state{Tokens: make(map[Portal]string)}
}

// TokenExpiry reads the exp claim without verifying the signature. The
// client does not refresh tokens; this exists so a portal can warn the
// user before a session dies mid-order.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}
	return exp.Time, nil
}
