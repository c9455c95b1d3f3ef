// Package config provides the configuration system for quill.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  5. Command Line Arguments  │  ← Highest priority
//	├─────────────────────────────┤
//	│  4. Environment (QUILL_*)   │
//	├─────────────────────────────┤
//	│  3. -config file            │
//	├─────────────────────────────┤
//	│  2. User config file        │  ← ~/.config/quill/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Files may be TOML or YAML; the format follows the file extension.
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading
//   - layer: Layer management and merging
//
// # Basic Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//
//	md := cfg.Markdown()
//	limit, err := cfg.GetInt("lua.callLimit")
//
// Section accessors never fail. A value of the wrong type falls back to
// the default and is recorded; inspect ConfigErrors after loading to
// report misconfiguration.
package config
