// Package config provides configuration loading, merging, and validation
// facilities for the user service and its command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-empty fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
