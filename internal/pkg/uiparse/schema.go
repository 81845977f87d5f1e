package uiparse

// componentListSchema describes the structured block the generator is asked to return
const componentListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "properties": {
      "type":     {"type": ["string", "null"]},
      "id":       {"type": ["string", "null"]},
      "title":    {"type": ["string", "null"]},
      "content":  {"type": ["string", "null"]},
      "style":    {"type": ["string", "null"]},
      "priority": {"type": ["integer", "null"]},
      "data":     {"type": ["object", "null"]}
    }
  }
}`
