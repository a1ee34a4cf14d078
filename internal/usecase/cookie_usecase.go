package usecase

import (
	"context"
	"errors"
	"strings"

	"cookieshop/internal/domain/entities"
	"cookieshop/internal/usecase/interfaces"
)

var (
	ErrCookieNotFound    = errors.New("cookie not found")
	ErrNothingToUpdate   = errors.New("no recognized cookie field provided")
	ErrInvalidPagination = errors.New("page and per_page must be positive integers")
)

// CookieFilter narrows and pages the cookie listing. Nil bounds are open;
// an empty NameSearch matches everything. Pagination slices the already
// filtered, insertion-ordered result set.
type CookieFilter struct {
	NameSearch string
	MinPrice   *float64
	MaxPrice   *float64
	Page       *int
	PerPage    *int
}

//go:generate mockgen -source=cookie_usecase.go -destination=../adapter/http/handlers/mocks/cookie_usecase_mock.go -package=mocks

// ICookieUseCase exposes the cookie store operations.

type ICookieUseCase interface {
	List(ctx context.Context, filter CookieFilter) ([]entities.Cookie, error)
	Create(ctx context.Context, name, description string, price float64, inventoryCount int) (entities.Cookie, error)
	GetByID(ctx context.Context, id int) (entities.Cookie, error)
	Patch(ctx context.Context, id int, update entities.CookieUpdate) (entities.Cookie, error)
	Delete(ctx context.Context, id int) error
}

type CookieUseCase struct {
	repo interfaces.ICookieRepository
}

var _ ICookieUseCase = (*CookieUseCase)(nil)

func NewCookieUseCase(repo interfaces.ICookieRepository) *CookieUseCase {
	return &CookieUseCase{repo: repo}
}

// List returns the cookies matching the filter in insertion order.
// A supplied non-positive page or per_page is rejected; an out-of-range page
// yields an empty list, not an error.
func (u *CookieUseCase) List(ctx context.Context, filter CookieFilter) ([]entities.Cookie, error) {
	if filter.Page != nil && *filter.Page < 1 {
		return nil, ErrInvalidPagination
	}
	if filter.PerPage != nil && *filter.PerPage < 1 {
		return nil, ErrInvalidPagination
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.NameSearch))
	matched := make([]entities.Cookie, 0, len(all))
	for _, c := range all {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if filter.MinPrice != nil && c.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && c.Price > *filter.MaxPrice {
			continue
		}
		matched = append(matched, c)
	}

	if filter.Page == nil || filter.PerPage == nil {
		return matched, nil
	}

	start := (*filter.Page - 1) * *filter.PerPage
	if start >= len(matched) {
		return []entities.Cookie{}, nil
	}
	end := start + *filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (u *CookieUseCase) Create(ctx context.Context, name, description string, price float64, inventoryCount int) (entities.Cookie, error) {
	c, err := entities.NewCookie(name, description, price, inventoryCount)
	if err != nil {
		return entities.Cookie{}, err
	}
	return u.repo.Create(ctx, c)
}

func (u *CookieUseCase) GetByID(ctx context.Context, id int) (entities.Cookie, error) {
	c, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cookie{}, err
	}
	if !found {
		return entities.Cookie{}, ErrCookieNotFound
	}
	return c, nil
}

// Patch applies a partial update and returns the updated cookie. It fails
// with ErrNothingToUpdate when no recognized field was provided.
func (u *CookieUseCase) Patch(ctx context.Context, id int, update entities.CookieUpdate) (entities.Cookie, error) {
	c, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cookie{}, err
	}
	if !found {
		return entities.Cookie{}, ErrCookieNotFound
	}

	updated, err := c.Update(update)
	if err != nil {
		return entities.Cookie{}, err
	}
	if !updated {
		return entities.Cookie{}, ErrNothingToUpdate
	}

	found, err = u.repo.Update(ctx, c)
	if err != nil {
		return entities.Cookie{}, err
	}
	if !found {
		return entities.Cookie{}, ErrCookieNotFound
	}
	return c, nil
}

func (u *CookieUseCase) Delete(ctx context.Context, id int) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrCookieNotFound
	}
	return nil
}
