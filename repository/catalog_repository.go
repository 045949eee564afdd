package repository

import (
	"strings"

	"github.com/cyber3201/foodApp/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ProductFilters collects the free-form browse filters. Nil price bounds
// mean "unbounded"; empty strings mean "no constraint".
type ProductFilters struct {
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Location   string
	CategoryID uint
}

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("id").Find(&rests).Error
	return rests, err
}

func (r *CatalogRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.
		Preload("Restaurant").
		Preload("Category").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindFiltered returns the candidate set in catalogue (id) order. The
// location text matches either the owning restaurant's name or the product
// description, case-insensitively.
func (r *CatalogRepository) FindFiltered(f ProductFilters) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{}).
		Joins("LEFT JOIN restaurants ON restaurants.id = products.restaurant_id")

	if f.Search != "" {
		q = q.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("products.price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("products.price <= ?", f.MaxPrice)
	}
	if f.Location != "" {
		loc := "%" + strings.ToLower(f.Location) + "%"
		q = q.Where("LOWER(restaurants.name) LIKE ? OR LOWER(products.description) LIKE ?", loc, loc)
	}
	if f.CategoryID != 0 {
		q = q.Where("products.category_id = ?", f.CategoryID)
	}

	var products []entity.Product
	err := q.Order("products.id").
		Preload("Restaurant").
		Preload("Category").
		Find(&products).Error
	return products, err
}

// FindPopular backs the default view when no filter is active.
func (r *CatalogRepository) FindPopular(minRating float64, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("rating >= ?", minRating).
		Order("id").
		Limit(limit).
		Preload("Restaurant").
		Preload("Category").
		Find(&products).Error
	return products, err
}

func (r *CatalogRepository) ListAvailable() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("is_available = ?", true).Order("id").Find(&products).Error
	return products, err
}

// ExistingProductIDs keeps only ids that resolve to a catalogue product,
// preserving input order and dropping duplicates.
func (r *CatalogRepository) ExistingProductIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []int64
	if err := r.DB.Model(&entity.Product{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	known := make(map[int64]bool, len(found))
	for _, id := range found {
		known[id] = true
	}

	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
			known[id] = false
		}
	}
	return out, nil
}
