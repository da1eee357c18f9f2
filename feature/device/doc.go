// Package device exposes the canonical device inventory over HTTP: CRUD
// endpoints for manually managed configuration items, the reconciliation
// audit trail, and a health check. The canonical rows themselves are
// written primarily by the ingest job (see feature/ingest).
package device
