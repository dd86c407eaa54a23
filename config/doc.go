// Package config defines the three-axis runtime options the CLI
// front-ends accept — which reducer, which attractor finder, and which
// pivot strategy to run — loadable from flags or an optional YAML file.
//
// YAML loading follows the niceyeti-tabular FromYaml shape: a fresh
// viper.New() instance reads one config file by path and unmarshals it
// directly into Options; flags explicitly passed on the command line
// then override whatever the file set, so a file supplies defaults and
// the command line wins ties.
package config
