package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/golang-jwt/jwt/v5"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetToken(PortalRider, "abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSelectedAddressID(3); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLastRiderLocation(entity.RiderLocation{Lat: 14.5995, Lng: 120.9842}); err != nil {
		t.Fatal(err)
	}

	// reopen and check everything survived
	s2, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.Token(PortalRider); got != "abc" {
		t.Fatalf("expected token abc, got %q", got)
	}
	if got := s2.Token(PortalCustomer); got != "" {
		t.Fatalf("expected empty customer token, got %q", got)
	}
	if got := s2.SelectedAddressID(); got != 3 {
		t.Fatalf("expected address 3, got %d", got)
	}
	loc := s2.LastRiderLocation()
	if loc == nil || loc.Lat != 14.5995 {
		t.Fatalf("rider location not persisted: %+v", loc)
	}

	if err := s2.ClearToken(PortalRider); err != nil {
		t.Fatal(err)
	}
	if got := s2.Token(PortalRider); got != "" {
		t.Fatalf("expected cleared token, got %q", got)
	}
}

func TestOpenFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("corrupt file should not fail open: %v", err)
	}
	if got := s.Token(PortalAdmin); got != "" {
		t.Fatalf("expected fresh state, got token %q", got)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := TokenExpiry(signed)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}

	if _, err := TokenExpiry("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
