// Package mocksource provides stub external systems for local development
// and end-to-end testing of the ingest pipeline. Each profile mimics one of
// the real upstream inventories, including their differences in field
// casing and response shape, so a local run exercises the normalizer's
// alias resolution the same way production data does.
package mocksource
