// Package store defines the persistence interfaces and sentinel errors
// used by the service layer, independent of any concrete database.
package store
