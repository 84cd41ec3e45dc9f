package survey

// Metadata describes the organization running the service. It is a
// plain record constructed once at startup, served verbatim by the
// info endpoint.
type Metadata struct {
	Organization string `json:"organization"`
	Discipline   string `json:"discipline"`
	Version      string `json:"version"`
}

func DefaultMetadata() Metadata {
	return Metadata{
		Organization: "UFRRJ",
		Discipline:   "Topografia e Agrimensura",
		Version:      "1.0.0",
	}
}
