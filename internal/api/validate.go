package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/p-n-ai/pai-planner/internal/learning"
)

const (
	levelTag        = "level"
	levelText       = "{0} must be one of beginner, intermediate, advanced (or easy, medium, hard)"
	resourceTypeTag = "resource_type"
	resourceText    = "{0} must be one of video, pdf, practice (or youtube, note, past-paper)"
)

// FieldError describes why one request field was rejected.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type requestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newRequestValidator() *requestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report JSON names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(levelTag, func(fl validator.FieldLevel) bool {
		return learning.ParseLevel(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation(resourceTypeTag, func(fl validator.FieldLevel) bool {
		switch learning.ParseResourceType(fl.Field().String()) {
		case learning.TypeVideo, learning.TypePDF, learning.TypePractice:
			return true
		}
		return false
	})
	registerTranslation(validate, translator, levelTag, levelText)
	registerTranslation(validate, translator, resourceTypeTag, resourceText)

	return &requestValidator{validate: validate, translator: translator}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates v and returns one FieldError per failed rule.
func (v *requestValidator) Struct(s any) ([]FieldError, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Error: fe.Translate(v.translator),
		})
	}
	return fields, nil
}

// fieldPath drops the root struct name: "rankRequest.topic" -> "topic".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
