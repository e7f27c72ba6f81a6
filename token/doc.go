// Package token holds the line-level primitives shared by the
// normalizer, parser and encoder: the quoting engine for keys and
// values, and the scanners for indentation, key/value splits and block
// scalar headers.
package token
