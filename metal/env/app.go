package env

const local = "local"
const staging = "staging"
const production = "production"

type AppEnvironment struct {
	Name string `validate:"required,min=4"`
	URL  string `validate:"required,url"`
	Type string `validate:"required,lowercase,oneof=local production staging"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsStaging() bool {
	return e.Type == staging
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local
}

// SiteEnvironment carries the fixed site metadata every rendered page gets:
// the blog title and the footer line. It is threaded into the handlers at
// startup rather than living as ambient globals.
type SiteEnvironment struct {
	Title  string `validate:"required"`
	Footer string `validate:"required"`
}

func (s SiteEnvironment) PageTitle(section string) string {
	if section == "" {
		return s.Title
	}

	return section + " - " + s.Title
}
