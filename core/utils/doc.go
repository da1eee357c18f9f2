// Package utils provides common utility functions for the CMDB application.
// It contains the loose-typed scalar conversions used when absorbing
// arbitrarily shaped JSON records from external device sources.
package utils
