package controllers

import (
	"errors"
	"strconv"

	"github.com/cyber3201/foodApp/pkg/resp"
	"github.com/cyber3201/foodApp/services"
	"github.com/cyber3201/foodApp/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, subtotal, err := ctl.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.Add(uid, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": req.ProductID})
}

// PATCH /cart/items/qty
func (ctl *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
		Delta     int  `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.ChangeQuantity(uid, body.ProductID, body.Delta); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"productId": body.ProductID})
}

// DELETE /cart/items/:productId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	productID, _ := strconv.Atoi(c.Param("productId"))

	if err := ctl.Svc.RemoveItem(uid, uint(productID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": productID})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := ctl.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
