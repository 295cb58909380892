// Package validation traduce los errores de go-playground/validator a domain.ValidationError.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los campos se reportan con su nombre JSON, que es lo que ve el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct valida s según sus etiquetas `validate`.
// Devuelve nil o un *domain.ValidationError: la etiqueta required marca el campo como faltante,
// cualquier otra como inválido.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewInvalidFields(err.Error())
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			out.Missing = appendUnique(out.Missing, fe.Field())
		} else {
			out.Invalid = appendUnique(out.Invalid, fe.Field())
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
