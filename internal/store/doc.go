// Package store defines the persistence gateway contracts for the catalog
// service: the UserStore and ItemStore interfaces, the DBTX abstraction over
// database handles, and the sentinel errors store implementations return.
//
// Implementations live under internal/platform; handlers depend only on the
// interfaces in this package.
package store
