// Package forms validates user-submitted records.
//
// Each form is a struct whose validate tags declare required fields, length
// bounds, numeric ranges, enum membership and format rules. Validation first
// normalizes the form: strings are trimmed and blank optional fields become nil,
// so an empty optional URL is absent rather than invalid.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// Form is a validatable record.
type Form interface {
	// Normalize trims fields, turns blank optional strings into nil and fills defaults.
	Normalize()
}

// FieldErrors maps a JSON field name to a human-readable message, one per violated field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors extracts FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{10,20}$`)
	hhmmPattern  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Validator runs form schemas. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(types.DayLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return types.ApplicationStatus(fl.Field().String()).Valid()
	})
	v.RegisterStructValidation(validateExperienceDates, ExperienceForm{})

	return &Validator{validate: v}
}

// Validate normalizes form in place and checks it. It returns nil on success,
// FieldErrors listing every violated field otherwise.
func (v *Validator) Validate(form Form) error {
	form.Normalize()

	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		if _, seen := fields[name]; !seen {
			fields[name] = message(fe)
		}
	}
	return fields
}

// fieldName drops the index suffix of slice elements ("tags[2]" -> "tags").
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Adresse email invalide"
	case "url":
		return "URL invalide"
	case "phone":
		return "Numéro de téléphone invalide"
	case "isodate":
		return "Date invalide (format AAAA-MM-JJ)"
	case "hhmm":
		return "Heure invalide (format HH:MM)"
	case "uuid":
		return "Identifiant invalide"
	case "appstatus":
		return "Statut de candidature invalide"
	case "oneof":
		return fmt.Sprintf("Valeur invalide (valeurs possibles : %s)", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "afterstart":
		return "La date de fin doit être postérieure à la date de début"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Doit contenir au moins %s caractères", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Doit contenir au moins %s éléments", fe.Param())
		default:
			return fmt.Sprintf("Doit être supérieur ou égal à %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Ne doit pas dépasser %s caractères", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Ne doit pas dépasser %s éléments", fe.Param())
		default:
			return fmt.Sprintf("Doit être inférieur ou égal à %s", fe.Param())
		}
	default:
		return "Valeur invalide"
	}
}

// trim trims s in place.
func trim(s *string) {
	*s = strings.TrimSpace(*s)
}

// optional trims *p and sets it to nil when blank.
func optional(p **string) {
	if *p == nil {
		return
	}
	v := strings.TrimSpace(**p)
	if v == "" {
		*p = nil
		return
	}
	*p = &v
}

// orDefault trims s and replaces it with def when blank.
func orDefault(s *string, def string) {
	trim(s)
	if *s == "" {
		*s = def
	}
}

// deref returns the pointed-to string or "".
func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
