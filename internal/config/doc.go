// Package config loads runtime configuration. Two sources exist: the components
// file, whose first two lines name the data provider and the calculator to build,
// and optional settings resolved with precedence CLI flags > YAML file > Defaults.
package config
