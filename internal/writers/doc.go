// Package writers serializes the final TF-to-peak score table.
//
// Writers own all presentation knowledge; the cache and aggregation
// packages only deal in cache.Row values.
package writers
