package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-backend/models"
	"institute-backend/services"
	"institute-backend/utils"
)

type MessageController struct {
	Service *services.MessageService
}

func NewMessageController(service *services.MessageService) *MessageController {
	return &MessageController{Service: service}
}

type contactPayload struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Course  string `json:"course" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Create is the public contact-form endpoint.
func (mc *MessageController) Create(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	msg := models.ContactMessage{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Course:  payload.Course,
		Message: payload.Message,
	}
	if err := mc.Service.Create(&msg); err != nil {
		log.Printf("contact message create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (mc *MessageController) List(c *gin.Context) {
	msgs, err := mc.Service.GetAll()
	if err != nil {
		log.Printf("contact message list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

type statusPayload struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}

func (mc *MessageController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	msg, err := mc.Service.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"status": "status must be one of: open closed"}})
		default:
			log.Printf("message status update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (mc *MessageController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		log.Printf("message delete failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
