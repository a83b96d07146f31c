package env

import "testing"

func TestAppEnvironmentChecks(t *testing.T) {
	env := AppEnvironment{Type: "production"}

	if !env.IsProduction() {
		t.Fatalf("expected production")
	}
	if env.IsStaging() || env.IsLocal() {
		t.Fatalf("unexpected type flags")
	}

	env.Type = "staging"
	if !env.IsStaging() {
		t.Fatalf("expected staging")
	}

	env.Type = "local"
	if !env.IsLocal() {
		t.Fatalf("expected local")
	}
}

func TestDBEnvironment_GetDSN(t *testing.T) {
	db := DBEnvironment{
		UserName:     "usernamefoo",
		UserPassword: "passwordfoo",
		DatabaseName: "dbnamefoo",
		Port:         5432,
		Host:         "localhost",
		DriverName:   "postgres",
		SSLMode:      "require",
		TimeZone:     "UTC",
	}

	expect := "host=localhost user='usernamefoo' password='passwordfoo' dbname='dbnamefoo' port=5432 sslmode=require TimeZone=UTC"
	if dsn := db.GetDSN(); dsn != expect {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}

func TestNetEnvironment(t *testing.T) {
	net := NetEnvironment{HttpHost: "localhost", HttpPort: "8080"}

	if net.GetHttpHost() != "localhost" {
		t.Fatalf("wrong host")
	}
	if net.GetHttpPort() != "8080" {
		t.Fatalf("wrong port")
	}
	if net.GetHostURL() != "localhost:8080" {
		t.Fatalf("wrong host url")
	}
}

func TestSiteEnvironmentPageTitle(t *testing.T) {
	site := SiteEnvironment{Title: "Junle", Footer: "© Junle"}

	if got := site.PageTitle(""); got != "Junle" {
		t.Fatalf("expected bare title, got %q", got)
	}

	if got := site.PageTitle("Tags"); got != "Tags - Junle" {
		t.Fatalf("expected composed title, got %q", got)
	}
}
