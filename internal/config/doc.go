// Package config assembles the server and client settings.
//
// Three layers are merged, non-zero fields of a later layer overriding
// earlier ones: environment variables, command-line flags, then the JSON
// file named by -config or CONFIG. [GetServerConfig] and [GetClientConfig]
// project the merged [StructuredConfig] onto what each binary needs and
// validate it.
package config
