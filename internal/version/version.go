package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions - bump these when making breaking changes.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinFreecellVersion map (tested by TestMinFreecellVersionCompleteness)
//  3. Teach FileSettingsStore.Load to read the previous schema
const (
	CurrentSettingsVersion = 1
)

// SettingsSchemaPrefix prefixes the settings file's freecell_schema value.
const SettingsSchemaPrefix = "settings/"

// MinFreecellVersion maps schema identifiers to the minimum release that can
// read them. Used to provide helpful upgrade messages for newer files.
var MinFreecellVersion = map[string]string{
	"settings/1": "0.1.0",
}

// FormatSettingsSchema creates a settings schema string from a version number.
// Example: FormatSettingsSchema(1) returns "settings/1"
func FormatSettingsSchema(v int) string {
	return fmt.Sprintf("%s%d", SettingsSchemaPrefix, v)
}

// ParseSettingsVersion extracts the version number from a settings schema string.
func ParseSettingsVersion(schema string) (int, error) {
	if !strings.HasPrefix(schema, SettingsSchemaPrefix) {
		return 0, fmt.Errorf("invalid settings schema format: %q (expected %sN)", schema, SettingsSchemaPrefix)
	}
	versionStr := strings.TrimPrefix(schema, SettingsSchemaPrefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid settings schema version: %q", versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid settings schema version: %d (must be >= 1)", v)
	}
	return v, nil
}

// CurrentSettingsSchema returns the current settings schema string.
func CurrentSettingsSchema() string {
	return FormatSettingsSchema(CurrentSettingsVersion)
}
