// Package validation validates configuration and catalog data structs.
//
// It wraps go-playground/validator and flattens ValidationErrors into a single
// readable error, one line per failing field.
package validation
