package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"institute-backend/models"
	"institute-backend/services"
	"institute-backend/utils"
)

type CertificateController struct {
	Service *services.CertificateService
}

func NewCertificateController(service *services.CertificateService) *CertificateController {
	return &CertificateController{Service: service}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parseIssueDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// GetByNumber is the public verification endpoint: exact certificate number
// in, single record or 404 out. Bulk listing stays admin-only.
func (cc *CertificateController) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	cert, err := cc.Service.GetByNumber(number)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Certificate not found"})
			return
		}
		log.Printf("certificate lookup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (cc *CertificateController) List(c *gin.Context) {
	certs, err := cc.Service.GetAll()
	if err != nil {
		log.Printf("certificate list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, certs)
}

type createCertificatePayload struct {
	CertificateNumber string `json:"certificateNumber" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Address           string `json:"address" binding:"required"`
	AadharNumber      string `json:"aadharNumber" binding:"required"`
	CertificateName   string `json:"certificateName" binding:"required"`
	IssueDate         string `json:"issueDate" binding:"required"`
	PercentageScore   *int   `json:"percentageScore" binding:"required,gte=0,lte=100"`
}

func (cc *CertificateController) Create(c *gin.Context) {
	var payload createCertificatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	issueDate, err := parseIssueDate(payload.IssueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"issueDate": "issueDate must be a date (YYYY-MM-DD)"}})
		return
	}

	cert := models.Certificate{
		CertificateNumber: payload.CertificateNumber,
		Name:              payload.Name,
		Address:           payload.Address,
		AadharNumber:      payload.AadharNumber,
		CertificateName:   payload.CertificateName,
		IssueDate:         issueDate,
		PercentageScore:   *payload.PercentageScore,
	}
	if err := cc.Service.Create(&cert); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "certificate number already exists"})
			return
		}
		log.Printf("certificate create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, cert)
}

type updateCertificatePayload struct {
	CertificateNumber *string `json:"certificateNumber" binding:"omitempty,min=1"`
	Name              *string `json:"name" binding:"omitempty,min=1"`
	Address           *string `json:"address" binding:"omitempty,min=1"`
	AadharNumber      *string `json:"aadharNumber" binding:"omitempty,min=1"`
	CertificateName   *string `json:"certificateName" binding:"omitempty,min=1"`
	IssueDate         *string `json:"issueDate"`
	PercentageScore   *int    `json:"percentageScore" binding:"omitempty,gte=0,lte=100"`
}

func (cc *CertificateController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload updateCertificatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	patch := services.CertificatePatch{
		CertificateNumber: payload.CertificateNumber,
		Name:              payload.Name,
		Address:           payload.Address,
		AadharNumber:      payload.AadharNumber,
		CertificateName:   payload.CertificateName,
		PercentageScore:   payload.PercentageScore,
	}
	if payload.IssueDate != nil {
		issueDate, err := parseIssueDate(*payload.IssueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"issueDate": "issueDate must be a date (YYYY-MM-DD)"}})
			return
		}
		patch.IssueDate = &issueDate
	}

	cert, err := cc.Service.Update(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Certificate not found"})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "certificate number already exists"})
		default:
			log.Printf("certificate update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (cc *CertificateController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Certificate not found"})
			return
		}
		log.Printf("certificate delete failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
