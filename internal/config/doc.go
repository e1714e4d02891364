// Package config defines the format-agnostic configuration model for the
// application and the Loader interface implemented by each supported file
// format.
//
// A Model always starts from Default; loaders only overwrite the settings a
// file actually provides, and command-line flags are applied on top by the
// app package.
package config
