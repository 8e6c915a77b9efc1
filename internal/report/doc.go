// Package report turns pipeline output into the delivery manifest
// (manifest.json) and a self-contained HTML report (report.html).
//
// Neither format feeds back into the pipeline; both are written once per
// delivery, next to the delivered files.
package report
