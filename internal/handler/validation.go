package handler

import (
	"fmt"
	"strings"

	"github.com/eventdesk/event-manager/pkg/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func oneOf(fl validator.FieldLevel) bool {
	matches := strings.Split(fl.Param(), " ")
	value := fl.Field().String()
	for _, match := range matches {
		if match == value {
			return true
		}
	}
	return false
}

// eventCategory accepts the fixed set of category labels an event can carry.
func eventCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, category := range model.Categories {
		if category == value {
			return true
		}
	}
	return false
}

// RegisterValidation Inspiration: https://blog.logrocket.com/gin-binding-in-go-a-tutorial-with-examples/
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("error getting validation engine")
	}

	if err := v.RegisterValidation("oneOf", oneOf); err != nil {
		return err
	}

	return v.RegisterValidation("eventCategory", eventCategory)
}
