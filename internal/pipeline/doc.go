// Package pipeline drives a dockerpeek run: it loads every service
// manifest, lists the analysis plugin's releases, selects the latest and
// penultimate version of each service and writes both snapshots to disk.
//
// The run is strictly sequential. Manifest failures are tolerated and only
// drop the affected services from the output; a release listing failure
// aborts the run before anything is written.
package pipeline
