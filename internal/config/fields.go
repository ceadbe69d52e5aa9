package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldBool accepts true or false.
	FieldBool FieldType = "bool"
	// FieldEnum accepts one of a fixed set of options.
	FieldEnum FieldType = "enum"
	// FieldFreetext accepts arbitrary string input.
	FieldFreetext FieldType = "freetext"
	// FieldList accepts a comma-separated list of strings.
	FieldList FieldType = "list"
)

// FieldOption describes a single selectable value for a field.
type FieldOption struct {
	Value       string
	Description string // empty for options without descriptions
}

// FieldDef describes a single config field's type and valid options.
type FieldDef struct {
	Key         string
	Type        FieldType
	Description string
	Options     []FieldOption
}

// fields is the canonical ordered registry of settable config fields.
var fields = []FieldDef{
	{
		Key:         "browser.name",
		Type:        FieldEnum,
		Description: messages.ConfigFieldBrowserName,
		Options: []FieldOption{
			{Value: profile.BrowserZen},
			{Value: profile.BrowserFirefox},
		},
	},
	{Key: "browser.profile_roots", Type: FieldList, Description: messages.ConfigFieldProfileRoots},
	{Key: "browser.required_dirs", Type: FieldList, Description: messages.ConfigFieldRequiredDirs},
	{Key: "catalog.path", Type: FieldFreetext, Description: messages.ConfigFieldCatalogPath},
	{
		Key:         "stylesheets.strategy",
		Type:        FieldEnum,
		Description: messages.ConfigFieldStrategy,
		Options: []FieldOption{
			{Value: "auto", Description: messages.ConfigStrategyAutoDescription},
			{Value: "inject", Description: messages.ConfigStrategyInjectDescription},
			{Value: "overwrite", Description: messages.ConfigStrategyOverwriteDescription},
		},
	},
	{
		Key:         "ui.theme",
		Type:        FieldEnum,
		Description: messages.ConfigFieldUITheme,
		Options: []FieldOption{
			{Value: ThemeDark},
			{Value: ThemeLight},
		},
	},
	{Key: "ui.color", Type: FieldBool, Description: messages.ConfigFieldUIColor},
}

// fieldIndex provides O(1) lookup by key.
var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Key] = i
	}
	return idx
}

// LookupField returns the field definition for the given config key.
// Returns false when the key is not in the catalog.
func LookupField(key string) (FieldDef, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return FieldDef{}, false
	}
	return copyFieldDef(fields[i]), true
}

// Fields returns a copy of all registered field definitions in catalog order.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	for i, f := range fields {
		out[i] = copyFieldDef(f)
	}
	return out
}

// FieldOptionValues returns the option values for a field as a plain string slice.
// Returns nil when the key is not in the catalog or has no options.
func FieldOptionValues(key string) []string {
	f, ok := LookupField(key)
	if !ok || len(f.Options) == 0 {
		return nil
	}
	values := make([]string, len(f.Options))
	for i, opt := range f.Options {
		values[i] = opt.Value
	}
	return values
}

// Parse converts raw command-line text into the TOML value for the field.
func (f FieldDef) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch f.Type {
	case FieldBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigSetInvalidBoolFmt, f.Key, raw)
		}
		return v, nil
	case FieldEnum:
		for _, opt := range f.Options {
			if opt.Value == raw {
				return raw, nil
			}
		}
		values := make([]string, len(f.Options))
		for i, opt := range f.Options {
			values[i] = opt.Value
		}
		return nil, fmt.Errorf(messages.ConfigSetInvalidOptionFmt, f.Key, raw, strings.Join(values, ", "))
	case FieldList:
		items := []any{}
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		return items, nil
	default:
		return raw, nil
	}
}

// copyFieldDef returns a deep copy of a FieldDef so callers cannot mutate the registry.
func copyFieldDef(f FieldDef) FieldDef {
	if len(f.Options) > 0 {
		opts := make([]FieldOption, len(f.Options))
		copy(opts, f.Options)
		f.Options = opts
	}
	return f
}
