// Package hcl provides the HCL implementation of config.Loader. Files are
// decoded with gohcl and every attribute is evaluated against an
// EvalContext, so settings may be expressions such as
// max(2999, default_max_year).
package hcl
