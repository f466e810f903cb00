// Package config manages the persisted ado configuration document.
//
// The document is a hierarchical key/value YAML file stored at
// ~/.config/ado/config.yaml. Top-level scalar keys (org, project, server)
// select the Azure DevOps instance; nested group keys (repo, build) hold
// per-command settings such as column specs and feature toggles.
//
// The package has two layers:
//
//   - Store: raw document I/O with deep-merge update semantics. Unknown
//     keys are always preserved; a missing file reads as an empty document.
//   - Config: a typed, validated accessor over the document combined with
//     environment-sourced secrets. Required-but-absent settings fail fast
//     with a ConfigurationError naming the remediation command.
package config
