package handlers

import (
	"errors"
	request "fleet_survey/internal/adapter/http/dto/request"
	response "fleet_survey/internal/adapter/http/dto/response"
	"fleet_survey/internal/usecase"
	"fleet_survey/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidShipPayload    = pkg.NewDomainErrorSimple("INVALID_SHIP_INPUT", "Invalid ship payload", http.StatusBadRequest)
	errInvalidCompanyPayload = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Invalid company payload", http.StatusBadRequest)
)

// FleetHandler handles ship and company records.

type FleetHandler struct {
	ships     usecase.IShipUseCase
	companies usecase.ICompanyUseCase
}

func NewFleetHandler(ships usecase.IShipUseCase, companies usecase.ICompanyUseCase) *FleetHandler {
	return &FleetHandler{ships: ships, companies: companies}
}

func (h *FleetHandler) CreateShip(c *gin.Context) {
	var payload request.ShipRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipPayload.HTTPStatus, errInvalidShipPayload.ToHTTPError())
		return
	}

	ship, err := h.ships.Create(c.Request.Context(), payload.ToEntity(c.GetHeader(HeaderCompanyID)))
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromShip(ship))
}

func (h *FleetHandler) GetShip(c *gin.Context) {
	ship, err := h.ships.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShip(ship))
}

func (h *FleetHandler) CreateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	company, err := h.companies.Create(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCompany(company))
}

func (h *FleetHandler) GetCompany(c *gin.Context) {
	company, err := h.companies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFleetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(company))
}

func mapFleetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShip):
		return pkg.NewDomainError("INVALID_SHIP_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipID), errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidCompany):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipNotFound):
		return pkg.NewDomainErrorSimple("SHIP_NOT_FOUND", "Ship not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
