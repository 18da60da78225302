// Package cli implements the toconv command line interface.
package cli
