// Package inventory implements the product inventory feature.
//
// Products are keyed by name and versioned by the date they were last updated.
// Every write goes through the core/reconcile engine, so a record is only ever
// replaced by a strictly newer one.
//
// # Components
//
//   - Store: gorm-backed persistence of the inventory table. It satisfies
//     reconcile.Store and runs each reconciliation in its own transaction.
//   - Service: CSV import (file, reader or bucket object), single product entry,
//     lookup by id, export and backup with an optional object storage copy.
//   - csvio: reading and writing of the inventory CSV format.
//   - shell: the interactive menu.
package inventory
