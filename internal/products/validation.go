package products

import (
	"errors"
	"strings"
)

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price must not be negative")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return errors.New("product stock must not be negative")
	}
	return nil
}
