package controllers

import (
	"errors"

	"github.com/cyber3201/foodApp/pkg/resp"
	"github.com/cyber3201/foodApp/services"
	"github.com/cyber3201/foodApp/utils"
	"github.com/gin-gonic/gin"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(s *services.ChatService) *ChatController { return &ChatController{Svc: s} }

// GET /chat/messages
func (ctl *ChatController) History(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	msgs, err := ctl.Svc.History(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}

// POST /chat/messages
func (ctl *ChatController) Send(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	reply, err := ctl.Svc.Ask(c.Request.Context(), uid, body.Text)
	if err != nil {
		if errors.Is(err, services.ErrRequestPending) {
			resp.Conflict(c, "a request is already pending")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, reply)
}
