// Package alarm implements the gRPC transport for the wake-gate engine.
//
// It adapts domain types to protobuf messages and exposes a server that calls
// into a provided business-service interface. Domain errors are mapped to
// gRPC status codes here and nowhere else.
package alarm
