// Package useradmin implements the operator control surface for user management.
//
// It translates browser actions into directory read/write operations so
// operators can inspect, provision, and repair user accounts without binding
// directly to the backing user store.
package useradmin
