// Package mcversion is the compiled registry of Minecraft server versions.
//
// The version table lives in versions_gen.go, which cmd/mcgen renders from
// the manifest cache. Lookups are binary searches over that static table;
// the package does no I/O.
package mcversion

//go:generate go run ../../cmd/mcgen -config ../../mcgen.toml -cache ../../.cache/versions.json -out versions_gen.go
