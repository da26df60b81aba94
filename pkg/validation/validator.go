package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes why one field of a payload was rejected.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Errors is the full list of field failures for one payload.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether path appears in the list.
func (e Errors) Has(path string) bool {
	for _, fe := range e {
		if fe.Path == path {
			return true
		}
	}
	return false
}

var initOnce sync.Once

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the custom tags used by request payloads.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("accepted", isAccepted)
		_ = v.RegisterValidation("maildomain", hasMailDomain)
		v.RegisterAlias("mailbox", "email,maildomain")
	})
}

// isAccepted passes only for a boolean true, e.g. a ticked consent checkbox.
func isAccepted(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() == reflect.Bool && f.Bool()
}

// hasMailDomain requires the part after '@' to look like a public domain:
// dot separated, no empty labels, alphabetic TLD of at least two letters.
func hasMailDomain(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Struct validates s against its binding tags and returns every failing field.
func Struct(s any) Errors {
	Init()
	if err := binding.Validator.ValidateStruct(s); err != nil {
		return ToFieldErrors(err)
	}
	return nil
}

// BindJSON decodes the request body into dst and validates it.
// A field with the wrong JSON type does not hide the rule failures of the
// other fields: encoding/json keeps decoding past it, so dst is still validated
// and both lists are merged, one entry per path.
func BindJSON(c *gin.Context, dst any) Errors {
	Init()
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	errs := ToFieldErrors(err)
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) {
		return errs
	}
	if verr := binding.Validator.ValidateStruct(dst); verr != nil {
		for _, fe := range ToFieldErrors(verr) {
			if !errs.Has(fe.Path) {
				errs = append(errs, fe)
			}
		}
	}
	return errs
}

// ToFieldErrors converts validation/binding errors into a field error list suitable for API responses.
func ToFieldErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var already Errors
	if errors.As(err, &already) {
		return already
	}

	if errors.Is(err, io.EOF) {
		return Errors{{Path: "payload", Message: "request body is required"}}
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	if errors.As(err, &se) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Errors{{Path: "payload", Message: "invalid json"}}
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		path := ute.Field
		if path == "" {
			path = "payload"
		}
		return Errors{{Path: path, Message: "must be " + describeType(ute.Type)}}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(Errors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Path: fieldPath(fe), Message: formatFieldError(fe)})
		}
		return out
	}

	// Fallback
	return Errors{{Path: "payload", Message: "invalid payload"}}
}

// fieldPath drops the top-level struct name from the namespace: "contactRequest.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	}
	if isNumberKind(t.Kind()) {
		return "a number"
	}
	return "a valid " + t.String()
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "email", "maildomain", "mailbox":
		return "must be a valid email"
	case "accepted":
		return "must be accepted"
	case "len":
		if param != "" {
			return fmt.Sprintf("must be exactly %s characters long", param)
		}
		return "invalid length"
	case "min":
		if param != "" {
			if isNumberKind(kind) {
				return "must be at least " + param
			}
			return "must be at least " + param + " characters long"
		}
		return "too small"
	case "max":
		if param != "" {
			if isNumberKind(kind) {
				return "must be at most " + param
			}
			return "must be at most " + param + " characters long"
		}
		return "too large"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "url":
		return "must be a valid URL"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
