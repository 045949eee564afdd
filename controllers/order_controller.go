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

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /checkout
func (ctl *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	order, payment, err := ctl.Svc.Checkout(uid)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.Conflict(c, "cart is empty")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order, "payment": payment})
}

// GET /orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := ctl.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Svc.Get(uid, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
