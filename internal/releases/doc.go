// Package releases lists the newest stable release tags of a GitHub
// repository. dockerpeek uses it for the Elasticsearch analysis plugin,
// whose releases decide which Elasticsearch versions are eligible.
package releases
