package cerebras

import "github.com/timemachine-studios/timemachine-proxy/pkg/domain"

// sanitizeTools returns copies of the tools with numeric range constraints
// removed at every nesting depth; the Cerebras API rejects minimum/maximum in
// function parameter schemas. The canonical tool values are never mutated.
func sanitizeTools(tools []domain.Tool) []domain.Tool {
	sanitized := make([]domain.Tool, len(tools))
	for i, tool := range tools {
		sanitized[i] = tool
		if tool.Function != nil {
			fn := *tool.Function
			fn.Parameters = sanitizeDefinition(tool.Function.Parameters)
			sanitized[i].Function = &fn
		}
	}
	return sanitized
}

func sanitizeDefinition(def domain.Definition) domain.Definition {
	def.Minimum = nil
	def.Maximum = nil

	if len(def.Properties) > 0 {
		properties := make(map[string]domain.Definition, len(def.Properties))
		for name, prop := range def.Properties {
			properties[name] = sanitizeDefinition(prop)
		}
		def.Properties = properties
	}

	if def.Items != nil {
		items := sanitizeDefinition(*def.Items)
		def.Items = &items
	}

	return def
}
