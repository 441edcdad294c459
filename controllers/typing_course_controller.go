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

type TypingCourseController struct {
	Service *services.TypingCourseService
}

func NewTypingCourseController(service *services.TypingCourseService) *TypingCourseController {
	return &TypingCourseController{Service: service}
}

func (tc *TypingCourseController) List(c *gin.Context) {
	courses, err := tc.Service.GetAll()
	if err != nil {
		log.Printf("typing course list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (tc *TypingCourseController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	course, err := tc.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("typing course fetch failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, course)
}

type createTypingCoursePayload struct {
	Title          string   `json:"title" binding:"required"`
	Duration       string   `json:"duration" binding:"required"`
	Price          string   `json:"price" binding:"required"`
	Description    string   `json:"description" binding:"required,min=10"`
	LearningPoints []string `json:"learningPoints"`
}

func (tc *TypingCourseController) Create(c *gin.Context) {
	var payload createTypingCoursePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	course := models.TypingCourse{
		Title:       payload.Title,
		Duration:    payload.Duration,
		Price:       payload.Price,
		Description: payload.Description,
	}
	if err := tc.Service.Create(&course, payload.LearningPoints); err != nil {
		log.Printf("typing course create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	created, err := tc.Service.GetByID(course.ID)
	if err != nil {
		log.Printf("typing course reload failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (tc *TypingCourseController) Update(c *gin.Context) {
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
		Duration:    payload.Duration,
		Price:       payload.Price,
		Description: payload.Description,
	}
	course, err := tc.Service.Update(id, patch, payload.LearningPoints)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("typing course update failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, course)
}

func (tc *TypingCourseController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := tc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		log.Printf("typing course delete failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
