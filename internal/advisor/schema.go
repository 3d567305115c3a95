package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// The response schemas sent to Gemini use its uppercase type vocabulary; the
// draft-07 schemas below them validate what actually comes back before it is
// trusted.

var careerResponseSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"name": {"type": "STRING"},
			"description": {"type": "STRING"},
			"rationale": {"type": "STRING"},
			"educationPathIndia": {"type": "STRING"},
			"dayInTheLifeNarrative": {"type": "STRING"},
			"iscoCode": {"type": "STRING", "description": "4-digit ISCO-08 code"}
		},
		"required": ["name", "description", "rationale", "educationPathIndia", "dayInTheLifeNarrative", "iscoCode"]
	}
}`)

var streamResponseSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"name": {"type": "STRING"},
			"description": {"type": "STRING"},
			"rationale": {"type": "STRING"},
			"subjects": {"type": "ARRAY", "items": {"type": "STRING"}}
		},
		"required": ["name", "description", "rationale", "subjects"]
	}
}`)

var skillResponseSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"skillName": {"type": "STRING"},
			"description": {"type": "STRING"},
			"relevance": {"type": "STRING"},
			"learningResources": {
				"type": "ARRAY",
				"items": {
					"type": "OBJECT",
					"properties": {
						"title": {"type": "STRING"},
						"url": {"type": "STRING"},
						"type": {"type": "STRING"}
					},
					"required": ["title", "url", "type"]
				}
			}
		},
		"required": ["skillName", "description", "relevance", "learningResources"]
	}
}`)

var deepDiveResponseSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"salaryIndia": {"type": "STRING"},
		"marketDemand": {"type": "STRING"},
		"automationRisk": {"type": "STRING"},
		"topSkills": {"type": "ARRAY", "items": {"type": "STRING"}},
		"growthPotential": {"type": "STRING"},
		"careerPathSummary": {"type": "STRING"}
	},
	"required": ["salaryIndia", "marketDemand", "automationRisk", "topSkills", "growthPotential", "careerPathSummary"]
}`)

var (
	careerValidator = gojsonschema.NewStringLoader(`{
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"description": {"type": "string"},
				"rationale": {"type": "string"},
				"educationPathIndia": {"type": "string"},
				"dayInTheLifeNarrative": {"type": "string"},
				"iscoCode": {"type": "string"}
			},
			"required": ["name", "description", "rationale", "educationPathIndia"]
		}
	}`)

	streamValidator = gojsonschema.NewStringLoader(`{
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"description": {"type": "string"},
				"rationale": {"type": "string"},
				"subjects": {"type": "array", "items": {"type": "string"}}
			},
			"required": ["name", "description", "rationale", "subjects"]
		}
	}`)

	skillValidator = gojsonschema.NewStringLoader(`{
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"skillName": {"type": "string"},
				"description": {"type": "string"},
				"relevance": {"type": "string"},
				"learningResources": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"title": {"type": "string"},
							"url": {"type": "string"},
							"type": {"type": "string"}
						},
						"required": ["title", "url", "type"]
					}
				}
			},
			"required": ["skillName", "description", "relevance", "learningResources"]
		}
	}`)

	deepDiveValidator = gojsonschema.NewStringLoader(`{
		"type": "object",
		"properties": {
			"salaryIndia": {"type": "string"},
			"marketDemand": {"type": "string"},
			"automationRisk": {"type": "string"},
			"topSkills": {"type": "array", "items": {"type": "string"}},
			"growthPotential": {"type": "string"},
			"careerPathSummary": {"type": "string"}
		},
		"required": ["salaryIndia", "marketDemand", "automationRisk", "topSkills", "growthPotential", "careerPathSummary"]
	}`)
)

// validateSchema checks a raw JSON document against a validator.
func validateSchema(validator gojsonschema.JSONLoader, doc string) error {
	result, err := gojsonschema.Validate(validator, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("validate response: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("response does not match schema: %v", result.Errors())
	}
	return nil
}
