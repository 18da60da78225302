// Package mapper maps loosely typed records (maps, url values, JSON objects) into
// structs through explicitly bound field setters.
package mapper
