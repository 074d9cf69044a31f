// Package metier holds the business layer. A Calculator derives its result from
// the value of an injected dao.Provider and never reaches for data on its own.
package metier
