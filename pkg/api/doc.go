// Package api defines the JSON messages of the splitledger.v1 services.
//
// Field names follow protojson conventions (lowerCamelCase). Money amounts
// are decimal strings such as "12.50" in the server's currency; timestamps
// are unix seconds with 0 meaning unset.
package api
