package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fleetadmin/internal/geo"
	"fleetadmin/internal/services"
)

const (
	msgString  = "Valid String Input Not Provided"
	msgNumeric = "Valid Numeric Input Not Provided"
	msgInput   = "Valid Input Not Provided"
	msgList    = "Valid List/Array of Input Not Provided"
	msgEmail   = "Valid Email Not Provided"
	msgName    = "Valid Name(s) Not Provided"
	msgPass    = "Valid Password Not Provided"
	msgPoint   = "Valid GeoJSON Point Not Provided"
	msgBody    = "Valid JSON Body Not Provided"
)

// numericString binds a digit field sent either as a JSON string or as a
// JSON number. The value keeps its decimal text.
type numericString string

func (n *numericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = numericString(num)
	return nil
}

// fieldMessages maps a JSON field path to the message shown when it is rejected.
type fieldMessages map[string]string

func (m fieldMessages) lookup(param string) string {
	if msg, ok := m[param]; ok {
		return msg
	}
	return msgInput
}

var jsonNamesOnce sync.Once

// useJSONFieldNames makes validator report fields by their JSON names.
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst. Failures come back as
// *services.ValidationError.
func bindJSON(c *gin.Context, dst any, messages fieldMessages) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]services.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			param := fieldPath(fe.Namespace())
			out = append(out, services.FieldError{Param: param, Msg: messages.lookup(param)})
		}
		return &services.ValidationError{Errors: out}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &services.ValidationError{Errors: []services.FieldError{
			{Param: typeErr.Field, Msg: messages.lookup(typeErr.Field)},
		}}
	}

	if errors.Is(err, geo.ErrNotAPoint) {
		return &services.ValidationError{Errors: []services.FieldError{
			{Param: "personal.coordinates", Msg: msgPoint},
		}}
	}

	return &services.ValidationError{Errors: []services.FieldError{{Param: "body", Msg: msgBody}}}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
