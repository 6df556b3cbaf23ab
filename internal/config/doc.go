// Package config loads slider settings and slide decks.
//
// Settings come from viper: defaults, then a config file (slider.yaml in the
// working directory or the user config dir, or an explicit path), then
// SLIDER_<SECTION>_<KEY> environment variables. Decks are separate YAML files
// decoded strictly with yaml.v3.
package config
