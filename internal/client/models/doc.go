// Package models holds the wire and view types shared by the stockkeeper
// client packages: identities, catalog entries, stock units and pages.
package models
