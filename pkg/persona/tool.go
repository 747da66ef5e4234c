package persona

import (
	"github.com/samber/lo"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
)

const GenerateImageFunction = "generate_image"

// ImageGenerationTool is the one tool every request carries. Dimension bounds
// live in the schema; the image handler trusts its input.
func ImageGenerationTool() domain.Tool {
	return domain.Tool{
		Type: domain.ToolTypeFunction,
		Function: &domain.Function{
			Name:        GenerateImageFunction,
			Description: "Generate an image using Pollinations AI with gptimage model",
			Parameters: domain.Definition{
				Type: domain.Object,
				Properties: map[string]domain.Definition{
					"prompt": {
						Type:        domain.String,
						Description: "Description of the image to generate. Use fully detailed prompt. Look carefully if the user mentions small details like adding text and style etc.",
					},
					"width": {
						Type:        domain.Integer,
						Description: "Width of the image in pixels",
						Default:     1080,
						Minimum:     lo.ToPtr(256),
						Maximum:     lo.ToPtr(2048),
					},
					"height": {
						Type:        domain.Integer,
						Description: "Height of the image in pixels",
						Default:     1920,
						Minimum:     lo.ToPtr(256),
						Maximum:     lo.ToPtr(2048),
					},
				},
				Required: []string{"prompt"},
			},
		},
	}
}
