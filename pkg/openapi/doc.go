// Package openapi derives form definitions from OpenAPI component schemas
// using kin-openapi. Booleans become checkboxes, enums become selects, long
// strings become textareas and everything else a text input.
package openapi
