package controllers

import (
	"errors"

	"github.com/cyber3201/foodApp/pkg/resp"
	"github.com/cyber3201/foodApp/services"
	"github.com/cyber3201/foodApp/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Svc     *services.AuthService
	CartSvc *services.CartService
}

func NewAuthController(s *services.AuthService, cart *services.CartService) *AuthController {
	return &AuthController{Svc: s, CartSvc: cart}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := ctl.Svc.Login(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user, "token": token})
}

// POST /auth/logout. The session's cart does not survive a logout.
func (ctl *AuthController) Logout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := ctl.CartSvc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	user, err := ctl.Svc.Me(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (ctl *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.UpdateMeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Svc.UpdateMe(uid, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /auth/me/addresses
func (ctl *AuthController) AddAddress(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr, err := ctl.Svc.AddAddress(uid, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addr)
}
