package pagination

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// ParseRuleTable decodes a YAML mapping of pattern to target. Document
// order is kept as table order.
//
//	"page/?([0-9]{1,})/?$": "index.php?paged=$matches[1]"
//	"(.+?)/page/?([0-9]{1,})/?$": "index.php?pagename=$matches[1]&paged=$matches[2]"
func ParseRuleTable(data []byte) (RuleTable, error) {
	var table RuleTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, newRuleTableError(err)
	}
	return table, nil
}

// MarshalYAML encodes the table as an ordered mapping.
func (t RuleTable) MarshalYAML() (any, error) {
	items := make(yaml.MapSlice, 0, len(t))
	for _, rule := range t {
		items = append(items, yaml.MapItem{Key: rule.Pattern, Value: rule.Target})
	}
	return items, nil
}

// UnmarshalYAML decodes an ordered mapping into the table.
func (t *RuleTable) UnmarshalYAML(unmarshal func(any) error) error {
	var items yaml.MapSlice
	if err := unmarshal(&items); err != nil {
		return err
	}

	table := make(RuleTable, 0, len(items))
	for _, item := range items {
		table = append(table, Rule{
			Pattern: scalarString(item.Key),
			Target:  scalarString(item.Value),
		})
	}
	*t = table
	return nil
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
