// Package conv converts loosely typed values into requested Go types.
//
// Each conversion runs an ordered list of strategies: conversions registered with
// RegisterConversion first, then a generic primitive coercion between scalar kinds,
// then a category specific text parser (boolean literals, date layouts, UUIDs, enum
// names). Convert and To report a typed *Error on failure, ConvertOrDefault and ToOr
// substitute the supplied default instead. A Converter is safe for concurrent use.
package conv
