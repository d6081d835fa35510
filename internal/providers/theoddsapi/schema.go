package theoddsapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// oddsSchema describes the fields the service depends on. Market internals
// are deliberately unconstrained beyond being an array.
const oddsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "sport_key", "home_team", "away_team", "commence_time", "bookmakers"],
    "properties": {
      "id": {"type": "string"},
      "sport_key": {"type": "string"},
      "home_team": {"type": "string"},
      "away_team": {"type": "string"},
      "commence_time": {"type": "string"},
      "bookmakers": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["key", "title", "markets"],
          "properties": {
            "key": {"type": "string"},
            "title": {"type": "string"},
            "markets": {"type": "array"}
          }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("theoddsapi-odds.schema.json", oddsSchema)

// decodeEvents validates body against the odds schema, then decodes it.
func decodeEvents(body []byte) ([]eventResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("unexpected shape: %w", err)
	}

	var events []eventResponse
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}
