package handler

import (
	"net/http"
	"reflect"

	"github.com/aashishdubey1/stock-inventory/internal/apierror"
	"github.com/aashishdubey1/stock-inventory/internal/middleware"
	"github.com/aashishdubey1/stock-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQueryAndValidate is bindAndValidate for query-string filters.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// currentUserID extracts the acting user's id from the JWT claims.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
		return uuid.Nil, false
	}
	return id, true
}

// writeStockError maps engine error kinds to HTTP statuses. Invariant
// violations are logged and hidden behind a 500; everything else is surfaced
// verbatim so the caller can correct the request.
func writeStockError(c *gin.Context, err error) {
	kind := service.KindOf(err)
	switch kind {
	case service.KindStockNotFound:
		c.JSON(http.StatusNotFound, apierror.NewKind(string(kind), err.Error()))
	case service.KindDuplicateIdentity,
		service.KindMissingTarget,
		service.KindInsufficientStock,
		service.KindCoilCountRequired,
		service.KindInsufficientCoils,
		service.KindCoilQuantityMismatch,
		service.KindPartialTransfer:
		c.JSON(http.StatusBadRequest, apierror.NewKind(string(kind), err.Error()))
	case service.KindNegativeBalance:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Err(err).
			Msg("stock invariant violation")
		c.JSON(http.StatusInternalServerError, apierror.NewKind(string(kind), err.Error()))
	default:
		// Not an engine error — a storage or driver failure. Log it, never
		// echo it to the caller.
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Err(err).
			Msg("stock operation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
