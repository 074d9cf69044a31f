// Package dao holds the data access layer: components that supply the raw value
// the business layer computes with.
package dao
