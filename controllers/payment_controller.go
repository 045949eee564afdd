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

type PaymentController struct{ Svc *services.OrderService }

func NewPaymentController(s *services.OrderService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /payments/:id/confirm
func (ctl *PaymentController) Confirm(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	payment, err := ctl.Svc.ConfirmPayment(uid, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "payment not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, services.ErrConflict):
			resp.Conflict(c, "payment already confirmed")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, payment)
}

// GET /payments/:id
func (ctl *PaymentController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	payment, err := ctl.Svc.GetPayment(uid, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "payment not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, payment)
}
