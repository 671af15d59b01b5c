// Package filter models the restaurant listing filter panel: a local
// draft the user edits, committed upward only on Apply. The server does
// the actual searching; this just composes the query.
package filter

import (
	"net/url"
	"strconv"
)

type Section string

const (
	SectionSort     Section = "sort_by"
	SectionCategory Section = "category"
	SectionOffers   Section = "offers"
	SectionService  Section = "service_type"
	SectionAll      Section = "all"
)

type Sort string

const (
	SortRelevance    Sort = "relevance"
	SortRating       Sort = "rating"
	SortDeliveryTime Sort = "delivery_time"
	SortDistance     Sort = "distance"
)

type ServiceType string

const (
	ServiceDelivery ServiceType = "delivery"
	ServicePickup   ServiceType = "pickup"
)

// Draft is the in-panel filter state. Categories is a set of cuisine
// ids; membership is flipped by ToggleCategory so duplicates cannot
// occur.
type Draft struct {
	SortBy       Sort
	Categories   []uint
	FreeDelivery bool
	HasPromos    bool
	OpenNow      bool
	ServiceType  ServiceType
}

func DefaultDraft() Draft {
	return Draft{SortBy: SortRelevance, ServiceType: ServiceDelivery}
}

func (d *Draft) ToggleCategory(id uint) {
	for i, c := range d.Categories {
		if c == id {
			d.Categories = append(d.Categories[:i], d.Categories[i+1:]...)
			return
		}
	}
	d.Categories = append(d.Categories, id)
}

func (d *Draft) HasCategory(id uint) bool {
	for _, c := range d.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// Query renders the draft as listing-endpoint query parameters.
func (d Draft) Query() url.Values {
	q := url.Values{}
	if d.SortBy != "" {
		q.Set("sort_by", string(d.SortBy))
	}
	for _, c := range d.Categories {
		q.Add("category", strconv.FormatUint(uint64(c), 10))
	}
	if d.FreeDelivery {
		q.Set("free_delivery", "1")
	}
	if d.HasPromos {
		q.Set("has_promos", "1")
	}
	if d.OpenNow {
		q.Set("open_now", "1")
	}
	if d.ServiceType != "" {
		q.Set("service_type", string(d.ServiceType))
	}
	return q
}
