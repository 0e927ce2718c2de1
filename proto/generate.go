// Package toolsv1 contains the generated gRPC bindings for the external
// tool registry service. Regenerate with `make proto`.
package toolsv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative toolregistry.proto
