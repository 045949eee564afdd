package controllers

import (
	"errors"
	"strconv"

	"github.com/cyber3201/foodApp/pkg/resp"
	"github.com/cyber3201/foodApp/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /categories
func (ctl *CatalogController) ListCategories(c *gin.Context) {
	cats, err := ctl.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /restaurants
func (ctl *CatalogController) ListRestaurants(c *gin.Context) {
	rests, err := ctl.Svc.Restaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (ctl *CatalogController) RestaurantDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := ctl.Svc.Restaurant(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /products?search=&minPrice=&maxPrice=&location=&categoryId=
func (ctl *CatalogController) ListProducts(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))

	q := services.ProductQuery{
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		MinPrice:   parsePrice(c.Query("minPrice")),
		MaxPrice:   parsePrice(c.Query("maxPrice")),
		CategoryID: uint(categoryID),
	}

	items, err := ctl.Svc.ListProducts(q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /products/:id
func (ctl *CatalogController) ProductDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	p, err := ctl.Svc.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// parsePrice treats anything non-numeric as "no bound".
func parsePrice(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
