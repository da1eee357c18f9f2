// Package models defines the persistent shapes of the CMDB: the canonical
// device table merged from all external sources and the append-only audit
// trail of reconciliation runs.
package models
