package store

import (
	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/pkg/common"
)

// Collection saves are whole-list replaces: the caller reads the full
// list, mutates it in memory and writes it back. Last writer wins, no
// revision check. bbolt serializes writers so lists are never torn, but
// concurrent admins can still clobber each other's edits.

func (s *Storage) Products() []domain.Product {
	list := []domain.Product{}
	s.Get(domain.KeyProducts, &list)
	return list
}

func (s *Storage) SaveProducts(list []domain.Product) {
	s.Set(domain.KeyProducts, list)
}

// UpsertProduct replaces the record matching p.ID in place, or appends
// when no match exists. A blank ID gets a generated one.
func (s *Storage) UpsertProduct(p domain.Product) domain.Product {
	if p.ID == "" {
		p.ID = common.NewID(domain.PrefixProduct)
	}
	list := s.Products()
	replaced := false
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, p)
	}
	s.SaveProducts(list)
	return p
}

func (s *Storage) DeleteProduct(id string) {
	list := s.Products()
	next := make([]domain.Product, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.SaveProducts(next)
}

func (s *Storage) Offers() []domain.Offer {
	list := []domain.Offer{}
	s.Get(domain.KeyOffers, &list)
	return list
}

func (s *Storage) SaveOffers(list []domain.Offer) {
	s.Set(domain.KeyOffers, list)
}

func (s *Storage) UpsertOffer(o domain.Offer) domain.Offer {
	if o.ID == "" {
		o.ID = common.NewID(domain.PrefixOffer)
	}
	list := s.Offers()
	replaced := false
	for i := range list {
		if list[i].ID == o.ID {
			list[i] = o
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, o)
	}
	s.SaveOffers(list)
	return o
}

func (s *Storage) DeleteOffer(id string) {
	list := s.Offers()
	next := make([]domain.Offer, 0, len(list))
	for _, o := range list {
		if o.ID != id {
			next = append(next, o)
		}
	}
	s.SaveOffers(next)
}

func (s *Storage) Categories() []domain.Category {
	list := []domain.Category{}
	s.Get(domain.KeyCategories, &list)
	return list
}

func (s *Storage) SaveCategories(list []domain.Category) {
	s.Set(domain.KeyCategories, list)
}

func (s *Storage) UpsertCategory(c domain.Category) domain.Category {
	if c.ID == "" {
		c.ID = common.NewID(domain.PrefixCategory)
	}
	list := s.Categories()
	replaced := false
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, c)
	}
	s.SaveCategories(list)
	return c
}

func (s *Storage) DeleteCategory(id string) {
	list := s.Categories()
	next := make([]domain.Category, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			next = append(next, c)
		}
	}
	s.SaveCategories(next)
}
