package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldLabels = map[string]string{
	"name":          "Nome",
	"company":       "Empresa",
	"whatsapp":      "WhatsApp",
	"email":         "E-mail",
	"project_type":  "Tipo de projeto",
	"deadline":      "Prazo",
	"objective":     "Objetivo",
	"title":         "Título",
	"category":      "Categoria",
	"thumbnail_url": "Thumbnail",
	"video_url":     "URL do vídeo",
	"image_url":     "URL da imagem",
	"role":          "Cargo",
	"bio":           "Bio",
	"instagram":     "Instagram",
	"linkedin":      "LinkedIn",
}

// ValidateStruct runs the struct's validate tags and returns one error per
// failing field, in declaration order. The first element is the first
// violated constraint.
func ValidateStruct(s any) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " é obrigatório"
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", label, fe.Param())
	case "email":
		return "E-mail inválido"
	case "url":
		return label + " deve ser uma URL válida"
	default:
		return label + " inválido"
	}
}

// ValidateSubmitLeadInput checks the intake constraints in form order and
// reports only the first violation.
func ValidateSubmitLeadInput(input SubmitLeadInput) *ValidationError {
	errs := ValidateStruct(input)
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}

// NormalizeSubmitLeadInput trims every field before validation and storage.
func NormalizeSubmitLeadInput(input SubmitLeadInput) SubmitLeadInput {
	return SubmitLeadInput{
		Name:        strings.TrimSpace(input.Name),
		Company:     strings.TrimSpace(input.Company),
		WhatsApp:    strings.TrimSpace(input.WhatsApp),
		Email:       strings.TrimSpace(input.Email),
		ProjectType: strings.TrimSpace(input.ProjectType),
		Deadline:    strings.TrimSpace(input.Deadline),
		Objective:   strings.TrimSpace(input.Objective),
	}
}

func validationFailed(ve ValidationError) error {
	return &DomainError{Code: CodeValidation, Field: ve.Field, Message: ve.Message}
}
