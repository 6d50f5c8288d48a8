package handlers

import (
	"errors"
	request "fleet_survey/internal/adapter/http/dto/request"
	response "fleet_survey/internal/adapter/http/dto/response"
	"fleet_survey/internal/usecase"
	"fleet_survey/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCertificatePayload = pkg.NewDomainErrorSimple("INVALID_CERTIFICATE_INPUT", "Invalid certificate payload", http.StatusBadRequest)
)

// CertificateHandler handles certificate record requests. Every write runs the
// survey calculator in the use case.

type CertificateHandler struct {
	usecase usecase.ICertificateUseCase
}

func NewCertificateHandler(uc usecase.ICertificateUseCase) *CertificateHandler {
	return &CertificateHandler{usecase: uc}
}

func (h *CertificateHandler) CreateCertificate(c *gin.Context) {
	var payload request.CertificateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCertificatePayload.HTTPStatus, errInvalidCertificatePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[certificate][handler] create failed ship_id=%s err=%v", payload.ShipID, err)
		appErr := mapCertificateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[certificate][handler] create success certificate_id=%s next_survey=%q", created.ID, created.NextSurvey)

	c.JSON(http.StatusCreated, response.FromCertificate(created))
}

func (h *CertificateHandler) GetCertificate(c *gin.Context) {
	cert, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCertificateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCertificate(cert))
}

func (h *CertificateHandler) UpdateCertificate(c *gin.Context) {
	var payload request.CertificateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCertificatePayload.HTTPStatus, errInvalidCertificatePayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[certificate][handler] update failed certificate_id=%s err=%v", id, err)
		appErr := mapCertificateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCertificate(updated))
}

// ListShipCertificates returns every certificate of a ship.
func (h *CertificateHandler) ListShipCertificates(c *gin.Context) {
	certs, err := h.usecase.ListByShipID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCertificateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCertificates(certs))
}

func mapCertificateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCertificateDate):
		return pkg.NewDomainError("INVALID_CERTIFICATE_DATE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCertificate), errors.Is(err, usecase.ErrInvalidCertificateID), errors.Is(err, usecase.ErrInvalidShipID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCertificateNotFound):
		return pkg.NewDomainErrorSimple("CERTIFICATE_NOT_FOUND", "Certificate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShipNotFound):
		return pkg.NewDomainErrorSimple("SHIP_NOT_FOUND", "Ship not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
