package config

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	enLoc := en.New()
	translate, _ := ut.New(enLoc, enLoc).GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		return nil, nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")

		return "'" + name + "'"
	})

	return validate, translate, nil
}

// Validate checks c against its struct tags. Violations are reported in a
// single ErrConfiguration error, sorted for stable output. Callers that
// change a loaded configuration, e.g. from command-line flags, validate again.
func (c *Configuration) Validate() error {
	v, translate, err := newValidator()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	err = v.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		msgs := slices.Sorted(maps.Values(errs.Translate(translate)))

		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(msgs, ", "))
	}

	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}
