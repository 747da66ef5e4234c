package domain

type DataType string

const (
	Object  DataType = "object"
	String  DataType = "string"
	Integer DataType = "integer"
	Number  DataType = "number"
	Boolean DataType = "boolean"
)

// Definition is a JSON schema fragment describing tool function parameters.
// Minimum and Maximum are pointers so zero is expressible as a bound.
type Definition struct {
	Type        DataType              `json:"type,omitempty"`
	Description string                `json:"description,omitempty"`
	Properties  map[string]Definition `json:"properties,omitempty"`
	Required    []string              `json:"required,omitempty"`
	Items       *Definition           `json:"items,omitempty"`
	Default     any                   `json:"default,omitempty"`
	Minimum     *int                  `json:"minimum,omitempty"`
	Maximum     *int                  `json:"maximum,omitempty"`
}

const ToolTypeFunction = "function"

type Tool struct {
	Type     string    `json:"type"`
	Function *Function `json:"function,omitempty"`
}

type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Parameters  Definition `json:"parameters"`
}
