/*
Package catalog builds differential-type catalogs for the compensation
engine.

PURPOSE:
  Converts JSON catalog documents into compensation.Catalog values. This
  enables catalog configuration without code changes - the platform team
  can publish differential-type definitions from a configuration service
  or static asset, and the factory produces the typed configs the engine
  consumes read-only.

WHY JSON?
  - Non-developers can adjust ranges and wording
  - Easy integration with an admin UI
  - Version control for catalog definitions
  - Database storage of catalog documents

JSON SCHEMA:
  {
    "night_shift": {
      "category": "essential",
      "question": "Do you earn a night shift differential?",
      "value_range": {"min": 1, "max": 15, "unit": "$/hour"},
      "frequency_range": {"min": 0, "max": 1, "unit": "per_shift"},
      "description": "Premium for hours worked overnight"
    },
    ...
  }

KEY FEATURES:
  - Validates structure (ranges present, min <= max)
  - Sets sensible defaults (category, frequency unit)
  - Preserves free-form descriptive unit strings

USAGE:
  cat, err := catalog.ParseCatalog(jsonDoc)
  cfg, ok := cat.Lookup("night_shift")

SEE ALSO:
  - defaults.go: Built-in nursing differential set
  - compensation/catalog.go: The schema these configs populate
*/
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/compensation-engine/compensation"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// TypeConfigJSON is the JSON representation of one catalog entry.
type TypeConfigJSON struct {
	Category    string    `json:"category"`
	Question    string    `json:"question"`
	ValueRange  RangeJSON `json:"value_range"`
	FreqRange   RangeJSON `json:"frequency_range"`
	Description string    `json:"description,omitempty"`
}

// RangeJSON is a min/max bound plus its unit string.
type RangeJSON struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// =============================================================================
// FACTORY
// =============================================================================

// ParseCatalog parses a JSON document mapping type keys to configs.
func ParseCatalog(doc []byte) (compensation.Catalog, error) {
	var raw map[string]TypeConfigJSON
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return FromJSON(raw)
}

// FromJSON converts parsed JSON entries to a Catalog.
func FromJSON(raw map[string]TypeConfigJSON) (compensation.Catalog, error) {
	cat := make(compensation.Catalog, len(raw))
	for key, tj := range raw {
		cfg, err := configFromJSON(key, tj)
		if err != nil {
			return nil, err
		}
		cat[key] = cfg
	}
	return cat, nil
}

// MarshalCatalog serializes a Catalog back to its JSON document form,
// the inverse of ParseCatalog. Used by the store layer.
func MarshalCatalog(cat compensation.Catalog) ([]byte, error) {
	raw := make(map[string]TypeConfigJSON, len(cat))
	for key, cfg := range cat {
		raw[key] = ToJSON(cfg)
	}
	return json.Marshal(raw)
}

// ParseConfig parses a single catalog entry document for the given key.
// Used by the store layer, which keeps one JSON column per type.
func ParseConfig(key string, doc []byte) (compensation.TypeConfig, error) {
	var tj TypeConfigJSON
	if err := json.Unmarshal(doc, &tj); err != nil {
		return compensation.TypeConfig{}, fmt.Errorf("failed to parse config for %q: %w", key, err)
	}
	return configFromJSON(key, tj)
}

// MarshalConfig serializes a single config, the inverse of ParseConfig.
func MarshalConfig(cfg compensation.TypeConfig) ([]byte, error) {
	return json.Marshal(ToJSON(cfg))
}

// ToJSON converts a typed config to its JSON representation.
func ToJSON(cfg compensation.TypeConfig) TypeConfigJSON {
	return TypeConfigJSON{
		Category:    string(cfg.Category),
		Question:    cfg.Question,
		ValueRange:  RangeJSON{Min: decToFloat(cfg.Value.Min), Max: decToFloat(cfg.Value.Max), Unit: cfg.Value.Unit},
		FreqRange:   RangeJSON{Min: decToFloat(cfg.Frequency.Min), Max: decToFloat(cfg.Frequency.Max), Unit: cfg.Frequency.Unit},
		Description: cfg.Description,
	}
}

func configFromJSON(key string, tj TypeConfigJSON) (compensation.TypeConfig, error) {
	if key == "" {
		return compensation.TypeConfig{}, fmt.Errorf("catalog entry with empty key")
	}
	if tj.ValueRange.Unit == "" {
		return compensation.TypeConfig{}, fmt.Errorf("catalog entry %q: missing value_range.unit", key)
	}
	if tj.ValueRange.Min > tj.ValueRange.Max {
		return compensation.TypeConfig{}, fmt.Errorf("catalog entry %q: value_range min > max", key)
	}
	if tj.FreqRange.Min > tj.FreqRange.Max {
		return compensation.TypeConfig{}, fmt.Errorf("catalog entry %q: frequency_range min > max", key)
	}

	category := compensation.Category(tj.Category)
	switch category {
	case compensation.CategoryEssential, compensation.CategoryCommon,
		compensation.CategoryRare, compensation.CategoryBonus:
	case "":
		category = compensation.CategoryCommon
	default:
		return compensation.TypeConfig{}, fmt.Errorf("catalog entry %q: unknown category %q", key, tj.Category)
	}

	freqUnit := tj.FreqRange.Unit
	if freqUnit == "" {
		freqUnit = string(compensation.FreqPerMonth)
	}

	return compensation.TypeConfig{
		Key:         key,
		Category:    category,
		Question:    tj.Question,
		Value:       rangeFromJSON(tj.ValueRange.Min, tj.ValueRange.Max, tj.ValueRange.Unit),
		Frequency:   rangeFromJSON(tj.FreqRange.Min, tj.FreqRange.Max, freqUnit),
		Description: tj.Description,
	}, nil
}

func rangeFromJSON(min, max float64, unit string) compensation.Range {
	return compensation.Range{
		Min:  decimal.NewFromFloat(min),
		Max:  decimal.NewFromFloat(max),
		Unit: unit,
	}
}

func decToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
