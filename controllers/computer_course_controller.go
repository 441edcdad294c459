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

type ComputerCourseController struct {
	Service *services.ComputerCourseService
}

func NewComputerCourseController(service *services.ComputerCourseService) *ComputerCourseController {
	return &ComputerCourseController{Service: service}
}

func (cc *ComputerCourseController) List(c *gin.Context) {
	courses, err := cc.Service.GetAll()
	if err != nil {
		log.Printf("computer course list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (cc *ComputerCourseController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	course, err := cc.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("computer course fetch failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, course)
}

type createComputerCoursePayload struct {
	Title          string   `json:"title" binding:"required"`
	FullName       string   `json:"fullName" binding:"required"`
	Duration       string   `json:"duration" binding:"required"`
	Price          string   `json:"price" binding:"required"`
	Description    string   `json:"description" binding:"required,min=10"`
	LearningPoints []string `json:"learningPoints"`
}

func (cc *ComputerCourseController) Create(c *gin.Context) {
	var payload createComputerCoursePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	course := models.ComputerCourse{
		Title:       payload.Title,
		FullName:    payload.FullName,
		Duration:    payload.Duration,
		Price:       payload.Price,
		Description: payload.Description,
	}
	if err := cc.Service.Create(&course, payload.LearningPoints); err != nil {
		log.Printf("computer course create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	created, err := cc.Service.GetByID(course.ID)
	if err != nil {
		log.Printf("computer course reload failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateCoursePayload struct {
	Title          *string   `json:"title" binding:"omitempty,min=1"`
	FullName       *string   `json:"fullName" binding:"omitempty,min=1"`
	Duration       *string   `json:"duration" binding:"omitempty,min=1"`
	Price          *string   `json:"price" binding:"omitempty,min=1"`
	Description    *string   `json:"description" binding:"omitempty,min=10"`
	LearningPoints *[]string `json:"learningPoints"`
}

func (cc *ComputerCourseController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload updateCoursePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	patch := services.CoursePatch{
		Title:       payload.Title,
		FullName:    payload.FullName,
		Duration:    payload.Duration,
		Price:       payload.Price,
		Description: payload.Description,
	}
	course, err := cc.Service.Update(id, patch, payload.LearningPoints)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("computer course update failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, course)
}

func (cc *ComputerCourseController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("computer course delete failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
