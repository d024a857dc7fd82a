package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
	"github.com/oksasatya/go-jobboard/pkg/response"
)

// fail maps service errors to responses: InputError 400, AccessError 403, anything else 500.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var ie *application.InputError
	var ae *application.AccessError
	switch {
	case errors.As(err, &ie):
		response.Error(c, http.StatusBadRequest, ie.Msg, nil)
	case errors.As(err, &ae):
		response.Error(c, http.StatusForbidden, ae.Msg, nil)
	default:
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
				"method":     c.Request.Method,
			})
		}
		response.Error(c, http.StatusInternalServerError, "A system error occurred", nil)
	}
}

// flexID accepts ids sent either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}
