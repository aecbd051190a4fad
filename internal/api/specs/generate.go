// Package specs holds the OpenAPI documents of the service. The v1specs
// package is generated from v1.yaml.
package specs

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --config ogen.yml --target v1specs --package v1specs --clean v1.yaml
