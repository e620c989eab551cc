package main

import _ "embed"

// embeddedConfig holds the YAML configuration embedded at build time.
// Release builds may overwrite embed_config.yaml to change the baked-in
// default input or logging before compiling.
//
//go:embed embed_config.yaml
var embeddedConfig []byte
