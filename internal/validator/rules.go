package validator

import (
	"log"
	"reflect"

	"careerlink/internal/models"
	"careerlink/internal/services/dto"
	"careerlink/pkg/dates"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-date", validateDate)

	v.RegisterCustomTypeFunc(salaryValue, dto.Salary{})
}

// salaryValue validates a salary as its number; an unset salary is nil so
// omitempty skips it.
func salaryValue(field reflect.Value) interface{} {
	s, ok := field.Interface().(dto.Salary)
	if !ok {
		return nil
	}
	if f := s.Float(); f != nil {
		return *f
	}
	return nil
}

// Empty values pass every rule below; "required" handles presence.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ParseRole(value)
	return ok
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).Valid()
}

func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := dates.Parse(value)
	return err == nil
}
