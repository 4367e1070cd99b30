// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Parsing is cached per struct type, so packages can call Load for their own
// config independently without re-reading the environment.
package config
