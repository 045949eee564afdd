package services

import (
	"fmt"
	"strings"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
	"github.com/shopspring/decimal"
)

// Default view when no filter is active: highly rated items, first ten in
// catalogue order.
const (
	popularMinRating = 4.7
	popularLimit     = 10
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ProductQuery mirrors the browse filters. Nil price bounds mean unbounded;
// CategoryID zero means no category selected.
type ProductQuery struct {
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Location   string
	CategoryID uint
}

func (q ProductQuery) isEmpty() bool {
	return q.Search == "" && q.Location == "" && q.MinPrice == nil && q.MaxPrice == nil
}

// ProductView is a product with its foreign keys resolved for display.
// Dangling references render as "Unknown" rather than failing.
type ProductView struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	IsAvailable    bool            `json:"isAvailable"`
	Image          string          `json:"image"`
	Rating         float64         `json:"rating"`
	PrepTime       string          `json:"prepTime"`
	Calories       int             `json:"calories"`
	Ingredients    []string        `json:"ingredients"`
	RestaurantID   uint            `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	CategoryID     uint            `json:"categoryId"`
	CategoryName   string          `json:"categoryName"`
	CategoryIcon   string          `json:"categoryIcon"`
}

// ListProducts derives the visible product list from the filter state:
//  1. candidates match search text, price range and location text;
//  2. a selected category narrows the candidates;
//  3. with no category and no filters at all, the popular fallback applies;
//  4. otherwise the full candidate set is returned, uncapped.
//
// Ordering is stable catalogue (id) order throughout. An empty result is a
// valid result.
func (s *CatalogService) ListProducts(q ProductQuery) ([]ProductView, error) {
	if q.CategoryID == 0 && q.isEmpty() {
		rows, err := s.Repo.FindPopular(popularMinRating, popularLimit)
		if err != nil {
			return nil, err
		}
		return viewsOf(rows), nil
	}

	rows, err := s.Repo.FindFiltered(repository.ProductFilters{
		Search:     q.Search,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Location:   q.Location,
		CategoryID: q.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	return viewsOf(rows), nil
}

func (s *CatalogService) GetProduct(id uint) (*ProductView, error) {
	p, err := s.Repo.GetProduct(id)
	if err != nil {
		return nil, err
	}
	v := viewOf(*p)
	return &v, nil
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) Restaurants() ([]entity.Restaurant, error) {
	return s.Repo.ListRestaurants()
}

func (s *CatalogService) Restaurant(id uint) (*entity.Restaurant, error) {
	return s.Repo.GetRestaurant(id)
}

// MenuSummary serializes the available catalogue for the assistant prompt,
// one "ID: Name (price MAD)" line per product.
func (s *CatalogService) MenuSummary() (string, error) {
	products, err := s.Repo.ListAvailable()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "%d: %s (%s MAD)\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
	return b.String(), nil
}

func viewOf(p entity.Product) ProductView {
	v := ProductView{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		IsAvailable:    p.IsAvailable,
		Image:          p.Image,
		Rating:         p.Rating,
		PrepTime:       p.PrepTime,
		Calories:       p.Calories,
		Ingredients:    p.Ingredients,
		RestaurantID:   p.RestaurantID,
		RestaurantName: "Unknown Restaurant",
		CategoryID:     p.CategoryID,
		CategoryName:   "Unknown",
		CategoryIcon:   "utensils",
	}
	if p.Restaurant.ID != 0 {
		v.RestaurantName = p.Restaurant.Name
	}
	if p.Category.ID != 0 {
		v.CategoryName = p.Category.Name
		v.CategoryIcon = p.Category.Icon
	}
	return v
}

func viewsOf(products []entity.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = viewOf(p)
	}
	return views
}
