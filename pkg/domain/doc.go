// Package domain contains the core entities of the credit score dashboard:
// wallet transactions, score snapshots and the derived user profile. The types
// are free of transport and storage concerns so they can be shared by every layer.
package domain
