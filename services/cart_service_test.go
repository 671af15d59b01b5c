package services

import (
	"errors"
	"testing"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

func TestCartLockedToOneRestaurant(t *testing.T) {
	f := newFixture(t)
	first := f.seedRestaurant(t, "Mang Inasal")
	second := f.seedRestaurant(t, "Jolly Lugawan")

	if _, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: first.ID, MenuItemID: 1, Name: "Inasal", UnitPrice: 14900, Quantity: 1,
	}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: second.ID, MenuItemID: 9, Name: "Lugaw", UnitPrice: 5500, Quantity: 1,
	})
	if !errors.Is(err, ErrCartLocked) {
		t.Fatalf("cross-restaurant add: err = %v, want ErrCartLocked", err)
	}

	// clearing unlocks the cart for the other restaurant
	if _, err := f.carts.Clear(testUser); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: second.ID, MenuItemID: 9, Name: "Lugaw", UnitPrice: 5500, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("add after clear: %v", err)
	}
	if cart.RestaurantID != second.ID {
		t.Errorf("cart restaurant = %d, want %d", cart.RestaurantID, second.ID)
	}
}

func TestAddSameItemMergesQuantity(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")

	in := &AddItemIn{RestaurantID: rest.ID, MenuItemID: 1, Name: "Inasal", UnitPrice: 14900, Quantity: 1}
	if _, err := f.carts.Add(testUser, in); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := f.carts.Add(testUser, in)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want merged single line", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", cart.Items[0].Quantity)
	}
	if cart.Items[0].Subtotal != money.Centavos(29800) {
		t.Errorf("subtotal = %d, want 29800", cart.Items[0].Subtotal)
	}
}

func TestUpdateQtyToZeroRemovesLine(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	cart, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: rest.ID, MenuItemID: 1, Name: "Inasal", UnitPrice: 14900, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err = f.carts.UpdateQty(testUser, cart.Items[0].ID, 0)
	if err != nil {
		t.Fatalf("update qty: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("items = %d, want 0 after qty hits zero", len(cart.Items))
	}
}

func TestCartSubtotal(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	if _, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: rest.ID, MenuItemID: 1, Name: "Inasal", UnitPrice: 14900, Quantity: 2,
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: rest.ID, MenuItemID: 2, Name: "Halo-Halo", UnitPrice: 9900, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if got := cart.Subtotal(); got != money.Centavos(39700) {
		t.Errorf("subtotal = %d (%s), want 39700", got, got)
	}
}
