// Package api contains the HTTP handlers, request/response models and
// error mapping for the catalog service.
//
// Handlers validate request payloads, call the persistence gateway, and
// serialize entities back through the response models. Response models are
// built from domain entities via explicit converter functions
// (NewUserResponse, NewItemResponse) rather than ad-hoc field copying at
// call sites.
package api
