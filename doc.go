// Package equipage computes ownership-cost metrics for personally owned
// equipment: how many days a device has been in service, what it costs
// per day, what it is still worth, and whether it is time to keep,
// monitor, or replace it.
//
// The package is a single-pass batch calculation over an in-memory
// registry loaded from a JSON file. The two entry points are Calculate
// (depreciation) and Score (health); everything else is loading,
// aggregation, and rendering around their results.
package equipage
