package services

import (
	"errors"
	"testing"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

const testUser uint = 11

func (f *fixture) fillCart(t *testing.T, restID uint) {
	t.Helper()
	_, err := f.carts.Add(testUser, &AddItemIn{
		RestaurantID: restID,
		MenuItemID:   1,
		Name:         "Chicken Inasal",
		UnitPrice:    money.Centavos(14900),
		Quantity:     2,
	})
	if err != nil {
		t.Fatalf("fill cart: %v", err)
	}
}

func TestPlaceOrderFromCart(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	f.fillCart(t, rest.ID)

	order, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.Status != entity.OrderPlaced {
		t.Errorf("status = %q, want placed", order.Status)
	}
	if order.Subtotal != money.Centavos(29800) {
		t.Errorf("subtotal = %d, want 29800", order.Subtotal)
	}
	if order.TotalPrice != order.Subtotal+order.DeliveryFee {
		t.Errorf("total %d != subtotal %d + fee %d", order.TotalPrice, order.Subtotal, order.DeliveryFee)
	}
	if order.PaymentMethod != "cod" {
		t.Errorf("payment = %q, want cod default", order.PaymentMethod)
	}

	cart, err := f.carts.Get(testUser)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("cart not cleared: %d items left", len(cart.Items))
	}
	if cart.RestaurantID != 0 {
		t.Errorf("cart still locked to restaurant %d", cart.RestaurantID)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1}); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCancelOnlyWhilePlaced(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	f.fillCart(t, rest.ID)
	order, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	cancelled, err := f.orders.CustomerCancel(testUser, order.ID)
	if err != nil {
		t.Fatalf("cancel placed order: %v", err)
	}
	if cancelled.Status != entity.OrderCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}

	// once the restaurant starts preparing, cancel loses the race
	f.fillCart(t, rest.ID)
	order2, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1})
	if err != nil {
		t.Fatalf("place second: %v", err)
	}
	if err := f.orders.VendorAccept(order2.ID); err != nil {
		t.Fatalf("vendor accept: %v", err)
	}
	if _, err := f.orders.CustomerCancel(testUser, order2.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancel preparing order: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelOtherCustomersOrder(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	f.fillCart(t, rest.ID)
	order, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if _, err := f.orders.CustomerCancel(testUser+1, order.ID); err == nil {
		t.Fatal("expected forbidden error for someone else's order")
	}
}

func TestRiderFirstAcceptWins(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	f.fillCart(t, rest.ID)
	order, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := f.orders.VendorAccept(order.ID); err != nil {
		t.Fatalf("vendor accept: %v", err)
	}

	won, err := f.orders.RiderAccept(7, order.ID)
	if err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if won.RiderID != 7 || won.Status != entity.OrderOutForDelivery {
		t.Errorf("got rider=%d status=%q, want rider=7 out_for_delivery", won.RiderID, won.Status)
	}

	if _, err := f.orders.RiderAccept(8, order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second accept: err = %v, want ErrInvalidTransition", err)
	}
	got, _ := f.orders.Get(testUser, order.ID)
	if got.RiderID != 7 {
		t.Errorf("rider = %d after losing accept, want 7", got.RiderID)
	}
}

func TestRiderCompleteRequiresAssignment(t *testing.T) {
	f := newFixture(t)
	rest := f.seedRestaurant(t, "Mang Inasal")
	f.fillCart(t, rest.ID)
	order, err := f.orders.Place(testUser, &PlaceOrderIn{AddressID: 1})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := f.orders.VendorAccept(order.ID); err != nil {
		t.Fatalf("vendor accept: %v", err)
	}
	if _, err := f.orders.RiderAccept(7, order.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if err := f.orders.RiderComplete(8, order.ID); err == nil {
		t.Fatal("expected error completing someone else's delivery")
	}
	if err := f.orders.RiderComplete(7, order.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, _ := f.orders.Get(testUser, order.ID)
	if got.Status != entity.OrderDelivered {
		t.Errorf("status = %q, want delivered", got.Status)
	}
}
