package services

import (
	"github.com/amcdesk/onboard/internal/client/models"
	"github.com/amcdesk/onboard/internal/client/schema"
)

// TemplateCategories maps the step-3 category flags to the tokens the
// template endpoint understands, preserving flag order. An empty
// result means the generic template should be requested (no query
// parameter at all).
func TemplateCategories(step3 models.StepData) []string {
	var tokens []string
	for _, cf := range schema.CategoryFlags() {
		if v, _ := step3[cf.Field].(bool); v {
			tokens = append(tokens, cf.Token)
		}
	}
	return tokens
}
