package cerebras

import (
	"testing"

	"github.com/samber/lo"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
)

func TestSanitizeTools_StripsRangeConstraints(t *testing.T) {
	tools := []domain.Tool{persona.ImageGenerationTool()}

	sanitized := sanitizeTools(tools)

	for name, prop := range sanitized[0].Function.Parameters.Properties {
		if prop.Minimum != nil || prop.Maximum != nil {
			t.Errorf("property %s still carries range constraints", name)
		}
	}
}

func TestSanitizeTools_HandlesArbitraryNesting(t *testing.T) {
	deep := domain.Tool{
		Type: domain.ToolTypeFunction,
		Function: &domain.Function{
			Name: "deep",
			Parameters: domain.Definition{
				Type:    domain.Object,
				Minimum: lo.ToPtr(1),
				Properties: map[string]domain.Definition{
					"outer": {
						Type: domain.Object,
						Properties: map[string]domain.Definition{
							"inner": {Type: domain.Integer, Minimum: lo.ToPtr(0), Maximum: lo.ToPtr(9)},
						},
					},
					"list": {
						Type:  "array",
						Items: &domain.Definition{Type: domain.Integer, Maximum: lo.ToPtr(5)},
					},
				},
			},
		},
	}

	sanitized := sanitizeTools([]domain.Tool{deep})[0]

	params := sanitized.Function.Parameters
	if params.Minimum != nil {
		t.Error("top-level minimum survived")
	}
	inner := params.Properties["outer"].Properties["inner"]
	if inner.Minimum != nil || inner.Maximum != nil {
		t.Error("nested property constraints survived")
	}
	if params.Properties["list"].Items.Maximum != nil {
		t.Error("array item constraint survived")
	}
}

func TestSanitizeTools_DoesNotMutateOriginal(t *testing.T) {
	original := persona.ImageGenerationTool()

	sanitizeTools([]domain.Tool{original})

	width := original.Function.Parameters.Properties["width"]
	if width.Minimum == nil || *width.Minimum != 256 {
		t.Error("sanitize mutated the canonical tool schema")
	}
}
