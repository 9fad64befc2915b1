// Package domain contains the core entities of the receipt relay: receipts
// captured from WhatsApp groups, customer-name queries against them, and the
// audit events recorded for both. The types are free of storage and transport
// concerns so they can be shared across packages.
package domain
