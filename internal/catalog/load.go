package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"scholarship-workers/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema validates a catalog asset before it is trusted. The rules
// object is deliberately loose beyond the known keys so new constraint kinds
// can ship in data before code supports them.
const catalogSchema = `{
  "type": "object",
  "required": ["version", "scholarships"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "scholarships": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "provider", "rules"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "provider": {"type": "string"},
          "amount": {"type": "string"},
          "deadline": {"type": "string"},
          "category": {"type": "string"},
          "criteria": {"type": "string"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "rules": {
            "type": "object",
            "properties": {
              "maxIncome": {"type": "number", "minimum": 0},
              "minIncome": {"type": "number", "minimum": 0},
              "minMarks": {"type": "number", "minimum": 0, "maximum": 100},
              "isFirstGraduate": {"type": "boolean"},
              "minAge": {"type": "integer", "minimum": 0},
              "maxAge": {"type": "integer", "minimum": 0}
            }
          }
        }
      }
    }
  }
}`

type catalogFile struct {
	Version      string               `json:"version"`
	Scholarships []models.Scholarship `json:"scholarships"`
}

// Load reads, validates, and indexes a catalog JSON asset.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON against the schema and builds a Catalog.
func Parse(data []byte) (*Catalog, error) {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Version, file.Scholarships)
}
