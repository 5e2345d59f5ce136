package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML layout of an external rule table.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRulesFile reads an ordered rule table from a YAML file. The file order
// is the precedence order, so deployments can reorder categorization
// priorities without a code change.
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if len(parsed.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}

	for i, rule := range parsed.Rules {
		if !rule.Category.IsValid() {
			return nil, fmt.Errorf("rules file %s: rule %d has unknown category %q", path, i, rule.Category)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: rule %d has no keywords", path, i)
		}
	}

	return parsed.Rules, nil
}
