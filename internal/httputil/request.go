package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MaxBodySize is the largest request body BindData accepts.
const MaxBodySize = 1 << 20

// BindData decodes the JSON body of the request into data.
//
// Fields missing from the body keep their value, so a PATCH body can be
// bound onto the current state of a resource.
func BindData(c *gin.Context, data any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)

	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	var maxBytesError *http.MaxBytesError
	var typeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return ErrRequestBodyEmpty
	case errors.As(err, &maxBytesError):
		return ErrRequestBodyTooLarge
	case errors.As(err, &typeError):
		return err
	}

	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("request body not bound")
	return ErrInvalidBody
}
