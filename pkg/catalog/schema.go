package catalog

// CatalogSchema is the JSON Schema every catalog document must satisfy
const CatalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["tools"],
  "additionalProperties": false,
  "properties": {
    "tools": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "quantity"],
        "additionalProperties": false,
        "properties": {
          "name": {
            "type": "string",
            "description": "Tool label"
          },
          "quantity": {
            "type": "integer",
            "description": "Units available for lending"
          },
          "reservations": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "additionalProperties": false,
              "properties": {
                "id": {"type": "string"},
                "borrower": {"type": "string"},
                "created_at": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`
