// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for aconnect.
//
// Configuration is optional. A file is loaded only when named by the
// --config flag (via [LoadFile]) or the ACONNECT_CONFIG environment
// variable (via [Load]); otherwise [Default] applies. There is no
// ~/.config discovery or automatic file search.
//
// Files are YAML. Files ending in .json or .jsonc are accepted too:
// comments and trailing commas are stripped with tidwall/jsonc and the
// result, being valid JSON, is decoded by the same YAML decoder.
//
// Variable expansion is performed on the device path after loading:
// ${VAR} and ${VAR:-default} patterns are expanded from the
// environment. No environment variable overrides a config value.
//
// This package depends on no other aconnect packages.
package config
