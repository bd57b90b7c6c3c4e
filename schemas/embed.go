// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// ApplicationsImport is the schema of the file read by `jobtrack import`.
//
//go:embed applications_import.schema.json
var ApplicationsImport []byte
