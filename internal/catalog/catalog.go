// Package catalog declares the services dockerpeek tracks and the manifest
// file each one is published under.
package catalog

// PluginService is the service whose versions are filtered by the analysis
// plugin's release tags.
const PluginService = "Elasticsearch"

// Service pairs a display name with the manifest file listing its versions.
type Service struct {
	Name     string `yaml:"name" toml:"name"`
	Manifest string `yaml:"manifest" toml:"manifest"`
}

// defaultServices is the declared service order. Output files follow it.
// Nacos is published as nacos-server, so the table is explicit rather than
// derived from the names.
var defaultServices = []Service{
	{Name: "Elasticsearch", Manifest: "elasticsearch_versions.json"},
	{Name: "GeoServer", Manifest: "geoserver_versions.json"},
	{Name: "Minio", Manifest: "minio_versions.json"},
	{Name: "Nacos", Manifest: "nacos-server_versions.json"},
	{Name: "Nginx", Manifest: "nginx_versions.json"},
	{Name: "RabbitMQ", Manifest: "rabbitmq_versions.json"},
	{Name: "Redis", Manifest: "redis_versions.json"},
}

// Default returns a copy of the built-in service list.
func Default() []Service {
	out := make([]Service, len(defaultServices))
	copy(out, defaultServices)
	return out
}

// Files returns the manifest filenames of services, in order, without
// duplicates.
func Files(services []Service) []string {
	seen := make(map[string]bool, len(services))
	files := make([]string, 0, len(services))
	for _, s := range services {
		if seen[s.Manifest] {
			continue
		}
		seen[s.Manifest] = true
		files = append(files, s.Manifest)
	}
	return files
}
